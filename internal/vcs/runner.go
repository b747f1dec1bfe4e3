package vcs

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Result is what a finished command left behind.
type Result struct {
	ExitCode int
	Stdout   string
}

// OK reports a zero exit status.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Runner executes an external program in dir.
// A non-nil error means the program could not be started at all;
// a program that ran and failed reports it via Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner runs real binaries from PATH.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	// Avoid pagers and color codes in parsed output
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "GIT_PAGER=cat", "JJ_PAGER=cat")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Stdout: string(out)}, nil
		}
		return Result{ExitCode: -1}, err
	}
	return Result{Stdout: string(out)}, nil
}
