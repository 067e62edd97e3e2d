// Command picoarray evaluates fixed-length array operations from the shell.
//
// Usage:
//
//	picoarray [flags] <command> [args]
//
// VALUES arguments are comma-separated lists, optionally bracketed. A single
// element array must be bracketed ("[5]") to tell it apart from a scalar.
// Use "--" before arguments that start with a minus sign.
//
// Examples:
//
//	picoarray mul 1,2,3 2
//	picoarray mul 2 [1,2,3]
//	picoarray add 1,2 3,4
//	picoarray -p 3 sin 0,1.5707963267948966
//	picoarray eval -- [-1,2] / 0
//	picoarray --config picoarray.toml empty 4
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-array/array"
	"github.com/cwbudde/algo-array/internal/config"
	"github.com/cwbudde/algo-array/internal/logging"
)

// Exit codes.
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitConversion
	exitShape
	exitIndex
	exitAllocation
)

var errUsage = errors.New("usage")

type cli struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		logger: logging.Nop(),
	}
	defer func() { _ = c.logger.Sync() }()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		c.logger.Error("command failed", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, config.ErrInvalid),
		errors.Is(err, array.ErrInvalidArgument):
		return exitUsage
	case errors.Is(err, array.ErrConversion):
		return exitConversion
	case errors.Is(err, array.ErrShapeMismatch):
		return exitShape
	case errors.Is(err, array.ErrIndexOutOfRange):
		return exitIndex
	case errors.Is(err, array.ErrAllocation):
		return exitAllocation
	default:
		return exitFailure
	}
}
