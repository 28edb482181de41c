package runtime

import (
	"io"
	"os"
)

// Controls where process output goes and which environment it inherits.
type Options struct {
	Stdout  io.Writer // Receives the process's standard output. Defaults to os.Stdout.
	Stderr  io.Writer // Receives the process's standard error. Defaults to os.Stderr.
	Environ []string  // Base environment. Defaults to os.Environ().
	Capture bool      // Keep a copy of the output in the ExecResult.
}

// Launches local processes.
type Runtime struct {
	stdout  io.Writer // Stream for process standard output.
	stderr  io.Writer // Stream for process standard error.
	environ []string  // Base environment for every process.
	capture bool      // Whether output is also buffered in memory.
}

// Creates a new [Runtime] from the given options.
func New(opts Options) *Runtime {
	rt := &Runtime{
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		environ: opts.Environ,
		capture: opts.Capture,
	}
	if rt.stdout == nil {
		rt.stdout = os.Stdout
	}
	if rt.stderr == nil {
		rt.stderr = os.Stderr
	}
	if rt.environ == nil {
		rt.environ = os.Environ()
	}
	return rt
}
