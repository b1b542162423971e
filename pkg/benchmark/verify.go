package benchmark

import (
	"github.com/pkg/errors"
)

// Strategies sharing a traversal visit the same bytes in the same order and
// must agree on the checksum.
var families = [][2]Strategy{
	{SequentialRead, SequentialMmap},
	{RandomRead, RandomMmap},
}

// Verify checks that strategies sharing a traversal produced the same
// checksum. Missing and incomplete results are skipped. Sequential and
// random checksums are not compared since the checksum is order-sensitive.
func Verify(results []*Result) error {
	byStrategy := map[Strategy]*Result{}
	for _, result := range results {
		if result != nil && !result.Incomplete {
			byStrategy[result.Strategy] = result
		}
	}

	for _, family := range families {
		a, okA := byStrategy[family[0]]
		b, okB := byStrategy[family[1]]
		if !okA || !okB {
			continue
		}

		if a.Checksum != b.Checksum {
			return errors.Wrapf(
				ErrChecksumMismatch,
				"%v=0x%016X %v=0x%016X",
				a.Strategy, a.Checksum,
				b.Strategy, b.Checksum,
			)
		}
	}

	return nil
}

// Agree reports whether all results carry the same checksum. This holds
// when the sequential and front/back orders coincide, which is the case for
// files of at most two blocks.
func Agree(results []*Result) bool {
	for _, result := range results {
		if result.Checksum != results[0].Checksum {
			return false
		}
	}

	return true
}
