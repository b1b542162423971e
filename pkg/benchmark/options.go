package benchmark

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pojntfx/file-access-bench/pkg/crc64be"
	"github.com/pojntfx/file-access-bench/pkg/logger"
	"github.com/pojntfx/file-access-bench/pkg/traversal"
)

// DefaultBlockSize is the size of every full window.
const DefaultBlockSize = 4096

// Options controls a benchmark run. Nil fields fall back to DefaultOptions.
type Options struct {
	// BlockSize is the length of every window except possibly the last one.
	BlockSize int

	// Table is the CRC table shared by all strategies.
	Table *crc64be.Table

	// Now is the monotonic clock used for timing.
	Now func() time.Time

	// Open opens the target file read-only.
	Open func(name string) (*os.File, error)

	// Mapper maps windows for the mmap strategies.
	Mapper Mapper

	Logger *zap.SugaredLogger

	// OnWindow, if set, is called for every window after it has been folded
	// into the checksum. It runs inside the timed interval.
	OnWindow func(Strategy, traversal.Window)
}

func DefaultOptions() *Options {
	return &Options{
		BlockSize: DefaultBlockSize,
		Table:     crc64be.ECMATable(),
		Now:       time.Now,
		Open:      os.Open,
		Mapper:    NewRegionMapper(),
		Logger:    logger.Nop(),
	}
}

func prepareDefaults(opts *Options) *Options {
	defaults := DefaultOptions()
	if opts == nil {
		return defaults
	}

	prepared := *opts

	if prepared.BlockSize == 0 {
		prepared.BlockSize = defaults.BlockSize
	}

	if prepared.Table == nil {
		prepared.Table = defaults.Table
	}

	if prepared.Now == nil {
		prepared.Now = defaults.Now
	}

	if prepared.Open == nil {
		prepared.Open = defaults.Open
	}

	if prepared.Mapper == nil {
		prepared.Mapper = defaults.Mapper
	}

	if prepared.Logger == nil {
		prepared.Logger = defaults.Logger
	}

	return &prepared
}

func Validate(opts *Options) error {
	if opts.BlockSize <= 0 {
		return NewValidationError("BlockSize", opts.BlockSize, fmt.Errorf("block size must be greater than 0, got %d", opts.BlockSize))
	}

	return nil
}
