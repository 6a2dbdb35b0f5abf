package terminal

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Styler colors prompt text
type Styler interface {
	Style(text, color string) string
}

// Prompter asks the user one question at a time and returns the trimmed answer
type Prompter struct {
	term  Terminal
	style Styler
	color string
}

func NewPrompter(t Terminal, s Styler, color string) *Prompter {
	return &Prompter{term: t, style: s, color: color}
}

// Ask shows text and blocks until a line is read. Any line is a valid
// answer, including a blank one. The only error is io.EOF on closed input.
func (p *Prompter) Ask(ctx context.Context, text string) (string, error) {
	return p.AskWithDefault(ctx, text, "")
}

// AskWithDefault is Ask with current pre-filled in the edit buffer
func (p *Prompter) AskWithDefault(ctx context.Context, text, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Join(io.EOF, err)
	}

	line, err := p.term.ReadLine(p.style.Style(text, p.color), current)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
