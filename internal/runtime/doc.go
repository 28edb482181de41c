// Package runtime runs host processes on behalf of the build step.
//
// A [Runtime] launches one local process at a time. Its output is streamed
// to the runtime's writers as it is produced, so callers see the toolchain's
// own diagnostics unmodified. With [Options].Capture set, the output is also
// buffered and returned in the [ExecResult]; leave it off for processes with
// large output that nobody reads back. A non-zero exit code is not an error at this
// layer; the caller decides what it means. Failing to start the process at
// all (missing executable, permission denied, bad working directory) is
// reported as [ErrLaunch].
//
// Example usage:
//
//	rt := runtime.New(runtime.Options{Stdout: os.Stdout, Stderr: os.Stderr})
//
//	result, err := rt.Exec(ctx, runtime.Command{
//	    Name: "cargo",
//	    Args: []string{"build", "--release"},
//	    Dir:  "/proj",
//	})
//	if err != nil {
//	    return err
//	}
//	if result.ExitCode != 0 {
//	    return fmt.Errorf("exit code %d", result.ExitCode)
//	}
package runtime
