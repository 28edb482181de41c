package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// A process to launch.
type Command struct {
	Name string   // Executable name or path, resolved through PATH.
	Args []string // Arguments, not including the executable.
	Dir  string   // Working directory. Empty means the current directory.
	Env  []string // "KEY=value" overrides applied on top of the base environment.
}

// Formats the command line for logs and error messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output of a process execution.
type ExecResult struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output. Empty unless capturing.
	Stderr   string // Captured standard error. Empty unless capturing.
}

// Runs a command to completion.
//
// Output is copied to the runtime's writers while the process runs. When the
// runtime captures, it is also buffered into the returned [ExecResult]. The
// call blocks until the process
// exits. A non-zero exit code is not treated as an error; the caller
// decides how to handle it. Any failure to start the process is returned
// wrapped in [ErrLaunch].
func (rt *Runtime) Exec(ctx context.Context, c Command) (*ExecResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = mergeEnv(rt.environ, c.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = rt.stdout
	cmd.Stderr = rt.stderr
	if rt.capture {
		cmd.Stdout = io.MultiWriter(rt.stdout, &stdout)
		cmd.Stderr = io.MultiWriter(rt.stderr, &stderr)
	}

	slog.Debug("exec", "command", c.String(), "dir", c.Dir, "env", len(c.Env))

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, c.Name, err)
	}

	exitCode, err := awaitProcess(cmd)
	if err != nil {
		return nil, err
	}

	return &ExecResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Waits for a started process to exit and returns the exit code.
//
// An [exec.ExitError] is a normal exit with a non-zero status and is not an
// error. A process killed by a signal reports exit code -1. Other errors come
// from copying the process output.
func awaitProcess(cmd *exec.Cmd) (int, error) {
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("%s: %w", cmd.Path, err)
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Entries without an equals sign are skipped. The base
// order is preserved and new keys are appended in override order.
func mergeEnv(base, overrides []string) []string {
	index := make(map[string]int, len(base)+len(overrides))
	result := make([]string, 0, len(base)+len(overrides))

	add := func(entry string) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		if i, seen := index[k]; seen {
			result[i] = entry
			return
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	for _, entry := range base {
		add(entry)
	}
	for _, entry := range overrides {
		add(entry)
	}

	return result
}
