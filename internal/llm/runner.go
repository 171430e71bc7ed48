package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no model command has been set up.
// The heuristic suggestion path still works without one.
var ErrNotConfigured = errors.New("no model command configured")

// Runner invokes an external language model out of process. This
// application never talks to a model API directly; the model is reached
// through whatever CLI the user points the config at, and its reply
// comes back as plain text for the response parsers to deal with.
type Runner interface {
	// Name returns the runner name for display
	Name() string

	// Invoke sends the prompt and returns the raw response text
	Invoke(ctx context.Context, promptText string) (string, error)

	// Ping checks whether the runner can be used at all
	Ping(ctx context.Context) error
}
