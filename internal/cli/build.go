package cli

import (
	"context"

	"github.com/cruciblehq/relstep/internal/build"
	"github.com/cruciblehq/relstep/internal/config"
	"github.com/cruciblehq/relstep/internal/runtime"
)

// Runs the build step for the parsed command line.
//
// Resolves the configuration once, then runs the build step with the
// toolchain's output streamed to this process's stdout and stderr.
func (c *CLI) Run(ctx context.Context) error {
	cfg, err := config.Load(config.Sources{
		SourceRoot: c.SourceRoot,
		BuildRoot:  c.BuildRoot,
		Toolchain:  c.Toolchain,
		ConfigFile: c.Config,
		EnvFile:    c.EnvFile,
	})
	if err != nil {
		return err
	}

	rt := runtime.New(runtime.Options{})

	_, err = build.Run(ctx, rt, build.Options{
		SourceRoot: cfg.SourceRoot,
		BuildRoot:  cfg.BuildRoot,
		Artifact:   c.Artifact,
		Toolchain:  cfg.Toolchain,
		Args:       cfg.Args,
		Env:        cfg.Environ(),
	})
	return err
}
