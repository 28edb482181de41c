package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/relstep/internal/runtime"
)

// Arguments selecting the toolchain's release build.
var releaseArgs = []string{"build", "--release"}

// Builds the toolchain command for a release build in the source root.
func releaseCommand(opts Options) runtime.Command {
	args := make([]string, 0, len(releaseArgs)+len(opts.Args))
	args = append(args, releaseArgs...)
	args = append(args, opts.Args...)

	return runtime.Command{
		Name: opts.Toolchain,
		Args: args,
		Dir:  opts.SourceRoot,
		Env:  opts.Env,
	}
}

// Runs the toolchain's release build once.
//
// A launch failure or a non-zero exit code is returned wrapped in
// [ErrBuild]. The toolchain's output has already been streamed by the
// runner, so only the exit code is added.
func invoke(ctx context.Context, rt Runner, opts Options) error {
	cmd := releaseCommand(opts)

	slog.Debug("running toolchain", "command", cmd.String(), "dir", cmd.Dir)

	result, err := rt.Exec(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: %s: exit code %d", ErrBuild, cmd, result.ExitCode)
	}

	return nil
}
