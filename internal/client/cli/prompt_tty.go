package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// selectPageSize caps how many records are shown at once.
const selectPageSize = 10

// ttyPrompter drives promptui on the controlling terminal. promptui puts the
// terminal in raw mode, so Ctrl+C arrives as promptui.ErrInterrupt rather than
// as a signal.
type ttyPrompter struct{}

func mapPromptError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return ErrCancelled
	default:
		return err
	}
}

func (ttyPrompter) Text(ctx context.Context, message, placeholder string, validate func(string) error) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}
	label := message
	if placeholder != "" {
		label = fmt.Sprintf("%s (e.g. %s)", message, placeholder)
	}
	p := promptui.Prompt{Label: label}
	if validate != nil {
		p.Validate = validate
	}
	v, err := p.Run()
	return v, mapPromptError(err)
}

func (ttyPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if ctx.Err() != nil {
		return false, ErrCancelled
	}
	p := promptui.Prompt{Label: message, IsConfirm: true}
	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, mapPromptError(err)
	}
	return true, nil
}

func (ttyPrompter) Select(ctx context.Context, message string, labels []string) (int, error) {
	if ctx.Err() != nil {
		return 0, ErrCancelled
	}
	s := promptui.Select{
		Label: message,
		Items: labels,
		Size:  min(len(labels), selectPageSize),
	}
	idx, _, err := s.Run()
	return idx, mapPromptError(err)
}
