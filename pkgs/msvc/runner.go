package msvc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result is the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner starts external processes. It returns an error only when the
// process could not be run at all; a non-zero exit is reported in Result.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (Result, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}
