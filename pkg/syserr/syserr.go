// Package syserr turns fatal benchmark errors into a diagnostic naming the
// failed operation, its call site and the system error number.
package syserr

import (
	stderrors "errors"
	"runtime"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Frame is the call site an error was recorded at.
type Frame struct {
	Func string
	File string
	Line int
}

// Site returns the deepest call site recorded in err's chain.
func Site(err error) (Frame, bool) {
	var (
		site  errors.Frame
		found bool
	)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		st, ok := e.(stackTracer)
		if !ok {
			continue
		}

		if trace := st.StackTrace(); len(trace) > 0 {
			site = trace[0]
			found = true
		}
	}

	if !found {
		return Frame{}, false
	}

	pc := uintptr(site) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return Frame{Func: "unknown", File: "unknown"}, true
	}

	file, line := fn.FileLine(pc)

	return Frame{
		Func: fn.Name(),
		File: file,
		Line: line,
	}, true
}

// Errno returns the system error number wrapped in err, if any.
func Errno(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return errno, true
	}

	return 0, false
}

// Operation returns the context added around the root cause of err.
func Operation(err error) string {
	cause := errors.Cause(err)
	if cause == err || err.Error() == cause.Error() {
		return ""
	}

	return strings.TrimSuffix(err.Error(), ": "+cause.Error())
}

// Report logs err as a fatal failure. The caller is expected to exit.
func Report(log *zap.SugaredLogger, err error) {
	kv := []any{"op", Operation(err)}

	if site, ok := Site(err); ok {
		kv = append(kv, "func", site.Func, "file", site.File, "line", site.Line)
	}

	if errno, ok := Errno(err); ok {
		kv = append(kv, "errno", int(errno), "errnoText", errno.Error())
	}

	kv = append(kv, "error", err.Error())

	log.Errorw("fatal", kv...)
}
