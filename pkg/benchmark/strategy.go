package benchmark

import (
	"fmt"

	"github.com/pojntfx/file-access-bench/pkg/traversal"
)

// Strategy is one way of reading the target file.
type Strategy int

const (
	SequentialRead Strategy = iota
	RandomRead
	SequentialMmap
	RandomMmap
)

// Strategies returns all strategies in report order.
func Strategies() []Strategy {
	return []Strategy{SequentialRead, RandomRead, SequentialMmap, RandomMmap}
}

func (s Strategy) String() string {
	switch s {
	case SequentialRead:
		return "sequential-read"
	case RandomRead:
		return "random-read"
	case SequentialMmap:
		return "sequential-mmap"
	case RandomMmap:
		return "random-mmap"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Label is the human-readable name used in reports.
func (s Strategy) Label() string {
	switch s {
	case SequentialRead:
		return "Sequential read (read)"
	case RandomRead:
		return "Random read (read)"
	case SequentialMmap:
		return "Sequential read (mmap)"
	case RandomMmap:
		return "Random read (mmap)"
	default:
		return s.String()
	}
}

// Mapped reports whether the strategy maps windows instead of reading them.
func (s Strategy) Mapped() bool {
	return s == SequentialMmap || s == RandomMmap
}

// Random reports whether the strategy alternates between both ends of the file.
func (s Strategy) Random() bool {
	return s == RandomRead || s == RandomMmap
}

func (s Strategy) valid() bool {
	return s >= SequentialRead && s <= RandomMmap
}

func (s Strategy) traversal(size int64, block int) traversal.Traversal {
	if s.Random() {
		return traversal.NewFrontBack(size, block)
	}

	return traversal.NewSequential(size, block)
}
