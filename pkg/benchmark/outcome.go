package benchmark

import (
	stderrors "errors"
	"io"
)

// Outcome classifies a single read attempt.
type Outcome uint8

const (
	// OutcomeData means bytes were returned, possibly fewer than requested.
	OutcomeData Outcome = iota + 1

	// OutcomeEOF means no bytes were returned and the input is exhausted.
	OutcomeEOF

	// OutcomeFailed means no bytes were returned because of an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeData:
		return "data"
	case OutcomeEOF:
		return "eof"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Classify maps the return values of a Read or ReadAt call to an Outcome.
func Classify(n int, err error) Outcome {
	if n > 0 {
		return OutcomeData
	}

	if err == nil || stderrors.Is(err, io.EOF) {
		return OutcomeEOF
	}

	return OutcomeFailed
}
