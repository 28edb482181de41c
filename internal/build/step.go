package build

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Position of a build step in its lifecycle.
type State int

const (
	StateInit State = iota
	StateBuilding
	StateBuilt
	StateBuildFailed
	StatePlacing
	StatePlaced
	StatePlacementFailed
)

// Allowed successors of each non-terminal state. The step only ever moves
// forward.
var transitions = map[State][]State{
	StateInit:     {StateBuilding},
	StateBuilding: {StateBuilt, StateBuildFailed},
	StateBuilt:    {StatePlacing},
	StatePlacing:  {StatePlaced, StatePlacementFailed},
}

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateBuilding:
		return "building"
	case StateBuilt:
		return "built"
	case StateBuildFailed:
		return "build failed"
	case StatePlacing:
		return "placing"
	case StatePlaced:
		return "placed"
	case StatePlacementFailed:
		return "placement failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Whether no further transition is possible.
func (s State) Terminal() bool {
	_, ok := transitions[s]
	return !ok
}

// Holds the state of a single build invocation.
//
// Every value is computed once when the step is created and discarded when
// the run returns.
type step struct {
	opts        Options
	produced    string // Binary left by the toolchain.
	destination string // Where the artifact is placed.
	state       State
}

// Creates a new [step] in [StateInit].
func newStep(opts Options) *step {
	produced, destination := derivePaths(opts)
	return &step{
		opts:        opts,
		produced:    produced,
		destination: destination,
		state:       StateInit,
	}
}

// Moves the step to the given state.
//
// Returns [ErrInvalidTransition] if to is not a successor of the current
// state.
func (s *step) advance(to State) error {
	if !slices.Contains(transitions[s.state], to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state, to)
	}
	slog.Debug("step", "from", s.state.String(), "to", to.String())
	s.state = to
	return nil
}

// Moves to a failure state and returns cause. A rejected transition is
// joined onto the cause rather than replacing it.
func (s *step) fail(to State, cause error) error {
	if err := s.advance(to); err != nil {
		return fmt.Errorf("%w; %w", cause, err)
	}
	return cause
}

// Runs the invoke stage, then the place stage.
func (s *step) run(ctx context.Context, rt Runner) (*Result, error) {
	if err := s.advance(StateBuilding); err != nil {
		return nil, err
	}

	if err := invoke(ctx, rt, s.opts); err != nil {
		return nil, s.fail(StateBuildFailed, err)
	}

	if err := s.advance(StateBuilt); err != nil {
		return nil, err
	}
	if err := s.advance(StatePlacing); err != nil {
		return nil, err
	}

	n, err := place(s.produced, s.destination)
	if err != nil {
		return nil, s.fail(StatePlacementFailed, err)
	}

	if err := s.advance(StatePlaced); err != nil {
		return nil, err
	}

	slog.Debug("artifact placed", "path", s.destination, "bytes", n)

	return &Result{
		Produced:    s.produced,
		Destination: s.destination,
		Size:        n,
	}, nil
}
