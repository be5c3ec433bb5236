package cli

import (
	"context"
	"errors"
)

// ErrCancelled is returned by a Prompter when the operator aborts a prompt
// (Ctrl+C, end of input or a cancelled context).
var ErrCancelled = errors.New("cancelled by operator")

// Prompter asks the operator for input.
type Prompter interface {
	// Text reads a free-form answer. A non-nil validate rejects an answer by
	// returning an error whose text is shown before asking again.
	Text(ctx context.Context, message, placeholder string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)
	// Select returns the index of the chosen label.
	Select(ctx context.Context, message string, labels []string) (int, error)
}
