package report

import (
	"fmt"
	"io"

	"github.com/pojntfx/file-access-bench/pkg/benchmark"
)

// Write prints the results in the order given.
func Write(w io.Writer, path string, results []*benchmark.Result) error {
	if _, err := fmt.Fprintf(w, "File: %s\n\n", path); err != nil {
		return err
	}

	for i, result := range results {
		if _, err := fmt.Fprintf(
			w,
			"%d. %s...\n   Time: %.6f s\n   CRC64: 0x%016X\n\n",
			i+1,
			result.Strategy.Label(),
			result.Seconds(),
			result.Checksum,
		); err != nil {
			return err
		}
	}

	return nil
}
