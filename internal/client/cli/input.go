package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// linePrompter implements Prompter on top of a plain reader. It is used when
// stdin is not a terminal. End of input counts as cancellation.
type linePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func newLinePrompter(r io.Reader, w io.Writer) *linePrompter {
	return &linePrompter{reader: bufio.NewReader(r), w: w}
}

// ask prints the prompt and waits for one line or for ctx to end.
func (p *linePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := GetSimpleText(p.reader, prompt, p.w)
		ch <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.w)
		return "", ErrCancelled
	case a := <-ch:
		if errors.Is(a.err, io.EOF) {
			return "", ErrCancelled
		}
		return a.line, a.err
	}
}

func (p *linePrompter) Text(ctx context.Context, message, placeholder string, validate func(string) error) (string, error) {
	prompt := message
	if placeholder != "" {
		prompt = fmt.Sprintf("%s (e.g. %s)", message, placeholder)
	}
	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(line); verr != nil {
				fmt.Fprintln(p.w, verr.Error())
				continue
			}
		}
		return line, nil
	}
}

// Confirm defaults to no on an empty answer.
func (p *linePrompter) Confirm(ctx context.Context, message string) (bool, error) {
	for {
		line, err := p.ask(ctx, message+" [y/N]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.w, "Please answer y or n.")
	}
}

func (p *linePrompter) Select(ctx context.Context, message string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, errors.New("select: nothing to choose from")
	}

	var b strings.Builder
	b.WriteString(message)
	for i, l := range labels {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, l)
	}
	prompt := b.String()

	for {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintf(p.w, "Please enter a number between 1 and %d.\n", len(labels))
	}
}
