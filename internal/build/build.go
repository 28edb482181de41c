package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/relstep/internal/paths"
	"github.com/cruciblehq/relstep/internal/runtime"
)

// Launches toolchain processes. Implemented by [runtime.Runtime].
type Runner interface {
	Exec(ctx context.Context, c runtime.Command) (*runtime.ExecResult, error)
}

// Controls one run of the build step.
type Options struct {
	SourceRoot string   // Project root, the toolchain's working directory.
	BuildRoot  string   // Meta-build output area.
	Artifact   string   // Requested artifact. Its file name selects the produced binary.
	Toolchain  string   // Toolchain executable.
	Args       []string // Extra arguments appended after "build --release".
	Env        []string // "KEY=value" entries added to the toolchain environment.
}

// Returned after the artifact has been placed.
type Result struct {
	Produced    string // Binary left by the toolchain.
	Destination string // Placed copy.
	Size        int64  // Bytes copied.
}

// Builds the release artifact and places it at its destination.
//
// The toolchain runs to completion before placement begins. A build failure
// ends the step without touching the destination.
func Run(ctx context.Context, rt Runner, opts Options) (*Result, error) {
	if err := validateArtifact(opts.Artifact); err != nil {
		return nil, err
	}

	s := newStep(opts)

	slog.Debug("building release artifact",
		"artifact", filepath.Base(opts.Artifact),
		"source", opts.SourceRoot,
		"destination", s.destination,
	)

	return s.run(ctx, rt)
}

// Rejects artifact names without a usable file name component.
func validateArtifact(artifact string) error {
	switch filepath.Base(artifact) {
	case ".", "..", string(filepath.Separator):
		return fmt.Errorf("%w: %q", ErrArtifact, artifact)
	}
	return nil
}

// Paths derived from the options, computed once per run.
func derivePaths(opts Options) (produced, destination string) {
	return paths.Produced(opts.SourceRoot, opts.Artifact), paths.Destination(opts.BuildRoot, opts.Artifact)
}
