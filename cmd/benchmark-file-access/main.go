package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pojntfx/file-access-bench/pkg/benchmark"
	"github.com/pojntfx/file-access-bench/pkg/logger"
	"github.com/pojntfx/file-access-bench/pkg/report"
	"github.com/pojntfx/file-access-bench/pkg/syserr"
)

const name = "benchmark-file-access"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run takes exactly one positional argument. It is never parsed as a flag,
// so paths starting with "-" are accepted.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		prog := name
		if len(args) > 0 {
			prog = args[0]
		}

		fmt.Fprintf(stderr, "Usage: %s <file>\n", prog)

		return 1
	}

	log := logger.New(name, stderr)
	defer log.Sync()

	path := args[1]

	results, err := benchmark.RunAll(path, &benchmark.Options{
		Logger: log,
	})
	if err != nil {
		syserr.Report(log, err)

		return 1
	}

	if err := benchmark.Verify(results); err != nil {
		log.Warnw("checksums of strategies sharing a traversal differ", "error", err)
	}

	log.Infow("checksums compared", "agree", benchmark.Agree(results))

	if err := report.Write(stdout, path, results); err != nil {
		syserr.Report(log, err)

		return 1
	}

	return 0
}
