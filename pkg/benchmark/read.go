package benchmark

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pojntfx/file-access-bench/pkg/traversal"
)

// readSequential reads block after block with position-advancing reads
// until the file is exhausted.
func (r *runner) readSequential(f io.Reader) error {
	p := make([]byte, r.opts.BlockSize)

	offset := int64(0)
	for {
		n, err := f.Read(p)

		switch Classify(n, err) {
		case OutcomeData:
			r.fold(traversal.Window{Offset: offset, Length: n}, p[:n])

			offset += int64(n)
		case OutcomeEOF:
			return nil
		default:
			return errors.Wrapf(err, "could not read block at offset %v", offset)
		}
	}
}

// readWindows reads each window of t with a positioned read. A failed read
// ends the traversal without an error, like a failed mapping.
func (r *runner) readWindows(t traversal.Traversal, f io.ReaderAt) error {
	p := make([]byte, r.opts.BlockSize)

	for {
		w, ok := t.Next()
		if !ok {
			return nil
		}

		n, err := f.ReadAt(p[:w.Length], w.Offset)

		switch Classify(n, err) {
		case OutcomeData:
			r.fold(traversal.Window{Offset: w.Offset, Length: n}, p[:n])

			t.Advance(n)
		case OutcomeEOF:
			return nil
		default:
			r.result.Incomplete = true
			r.result.Cause = errors.Wrapf(err, "could not read window %v", w)

			return nil
		}
	}
}

// mapWindows maps, folds and unmaps each window of t in turn, so at most one
// mapping exists at a time. A failed mapping ends the traversal without an
// error; a failed unmap is fatal.
func (r *runner) mapWindows(t traversal.Traversal, f *os.File) error {
	for {
		w, ok := t.Next()
		if !ok {
			return nil
		}

		m, err := r.opts.Mapper.Map(f, w)
		if err != nil {
			r.result.Incomplete = true
			r.result.Cause = errors.Wrapf(err, "could not map window %v", w)

			return nil
		}

		r.fold(w, m.Bytes())

		if err := m.Unmap(); err != nil {
			return errors.Wrapf(err, "could not unmap window %v", w)
		}

		t.Advance(w.Length)
	}
}
