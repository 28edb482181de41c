package cli

import (
	"errors"

	"github.com/cruciblehq/relstep/internal/build"
	"github.com/cruciblehq/relstep/internal/config"
)

// Exit codes returned by relstep.
const (

	// The artifact was built and placed.
	ExitSuccess = 0

	// The build or the placement failed.
	ExitFailure = 1

	// The environment, configuration or arguments are invalid.
	ExitConfigError = 2
)

// Returns the process exit code for an error returned by [Execute].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrConfig), errors.Is(err, build.ErrArtifact):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
