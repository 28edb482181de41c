package runtime

import "errors"

var (
	ErrLaunch = errors.New("process could not be started")
)
