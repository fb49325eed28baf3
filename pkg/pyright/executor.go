package pyright

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the captured streams and exit status of one pyright run.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs the pyright process. It is an interface so tests can
// inject canned results instead of spawning node.
type Executor interface {
	Run(ctx context.Context, args []string) (*Result, error)
}

// CommandExecutor runs the real pyright binary found on PATH.
type CommandExecutor struct{}

func NewExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

// Run spawns pyright with --outputjson followed by the given arguments and
// waits for it to terminate. A non-zero exit status is not an error here:
// pyright exits non-zero whenever it reports diagnostics, and the exit code
// decides how the output is parsed. Only a failure to spawn the process is
// returned as an error.
func (e *CommandExecutor) Run(ctx context.Context, args []string) (*Result, error) {
	bin, err := exec.LookPath("pyright")
	if err != nil {
		return nil, fmt.Errorf("look up pyright in PATH: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin, append([]string{"--outputjson"}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run pyright: %w", err)
		}
	}
	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
