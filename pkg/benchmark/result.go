package benchmark

import "time"

// Result is the outcome of running one strategy.
type Result struct {
	Strategy Strategy
	Elapsed  time.Duration
	Checksum uint64

	// Bytes is the number of bytes folded into Checksum.
	Bytes int64

	// Windows is the number of windows visited.
	Windows int

	// Incomplete is set if a tolerated failure ended the traversal early;
	// Cause holds that failure.
	Incomplete bool
	Cause      error
}

// Seconds returns the elapsed time in seconds.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Throughput returns the read throughput in MB/s.
func (r *Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Bytes) / (1024 * 1024) / r.Elapsed.Seconds()
}
