package build

import "errors"

var (
	ErrBuild             = errors.New("build failed")
	ErrPlacement         = errors.New("placement failed")
	ErrArtifact          = errors.New("invalid artifact name")
	ErrInvalidTransition = errors.New("invalid step transition")
)
