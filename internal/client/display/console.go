package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"quiz/internal/core"
)

// Console renders command output. With color disabled every style is a no-op.
type Console struct {
	out   io.Writer
	color bool
}

const bannerFont = "standard"

func NewConsole(out io.Writer, color bool) *Console {
	return &Console{out: out, color: color}
}

// Style wraps text in the given color code
func (c *Console) Style(text, color string) string {
	if !c.color || color == "" {
		return text
	}
	return color + text + Reset
}

func (c *Console) Line(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Linef(format string, args ...any) {
	c.Line(fmt.Sprintf(format, args...))
}

// ErrorLine renders a single error message
func (c *Console) ErrorLine(text string) {
	c.Line(c.Style("Error: "+text, Red))
}

// Error renders err according to its kind. Field validation failures get a
// header and one line per message.
func (c *Console) Error(err error) {
	e := core.Convert(err)
	switch e.Kind {
	case core.KindFieldValidation:
		c.ErrorLine("Invalid quiz:")
		for _, msg := range e.Messages {
			c.ErrorLine(msg)
		}
	default:
		c.ErrorLine(e.Error())
	}
}

// Banner renders text as large ASCII art
func (c *Console) Banner(text, color string) {
	art := strings.TrimRight(figure.NewFigure(text, bannerFont, false).String(), "\n")
	for _, row := range strings.Split(art, "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		c.Line(c.Style(row, color))
	}
}

// Prompt returns the styled idle prompt, e.g. "quiz > "
func (c *Console) Prompt(text string) string {
	return c.Style(text+" > ", Yellow)
}
