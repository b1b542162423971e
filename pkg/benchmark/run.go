package benchmark

import (
	"github.com/pkg/errors"
	"github.com/pojntfx/go-nbd/pkg/backend"

	"github.com/pojntfx/file-access-bench/pkg/crc64be"
	"github.com/pojntfx/file-access-bench/pkg/traversal"
)

type runner struct {
	strategy Strategy
	opts     *Options
	result   Result
}

func (r *runner) fold(w traversal.Window, p []byte) {
	r.result.Checksum = crc64be.Update(r.result.Checksum, r.opts.Table, p)
	r.result.Bytes += int64(len(p))
	r.result.Windows++

	if r.opts.OnWindow != nil {
		r.opts.OnWindow(r.strategy, w)
	}
}

// Run benchmarks one strategy against the file at path. The returned error
// is fatal; tolerated failures are reported through Result.Incomplete.
func Run(strategy Strategy, path string, opts *Options) (result *Result, err error) {
	if !strategy.valid() {
		return nil, errors.Wrapf(ErrInvalidStrategy, "%d", int(strategy))
	}

	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	f, err := opts.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			result = nil
			err = errors.Wrap(closeErr, "could not close file")
		}
	}()

	advise(f, strategy.Random())

	r := &runner{
		strategy: strategy,
		opts:     opts,
		result:   Result{Strategy: strategy},
	}

	var loop func() error
	if strategy == SequentialRead {
		loop = func() error {
			return r.readSequential(f)
		}
	} else {
		b := backend.NewFileBackend(f)

		size, err := b.Size()
		if err != nil {
			return nil, errors.Wrap(err, "could not get file size")
		}

		t := strategy.traversal(size, opts.BlockSize)
		if strategy.Mapped() {
			loop = func() error {
				return r.mapWindows(t, f)
			}
		} else {
			loop = func() error {
				return r.readWindows(t, b)
			}
		}
	}

	beforeRead := opts.Now()
	loopErr := loop()
	afterRead := opts.Now()

	if loopErr != nil {
		return nil, loopErr
	}

	r.result.Elapsed = afterRead.Sub(beforeRead)

	if r.result.Incomplete {
		opts.Logger.Warnw(
			"traversal ended early",
			"strategy", strategy.String(),
			"windows", r.result.Windows,
			"bytes", r.result.Bytes,
			"cause", r.result.Cause,
		)
	}

	opts.Logger.Debugw(
		"strategy finished",
		"strategy", strategy.String(),
		"elapsed", r.result.Elapsed,
		"checksum", r.result.Checksum,
		"windows", r.result.Windows,
		"throughput", r.result.Throughput(),
	)

	result = &r.result

	return result, nil
}

// RunAll runs every strategy one after another in report order. On a fatal
// error it returns the results collected so far.
func RunAll(path string, opts *Options) ([]*Result, error) {
	results := []*Result{}
	for _, strategy := range Strategies() {
		result, err := Run(strategy, path, opts)
		if err != nil {
			return results, errors.Wrap(err, strategy.String())
		}

		results = append(results, result)
	}

	return results, nil
}
