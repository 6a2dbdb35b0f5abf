package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Line reads from a plain reader, one line per call. It cannot pre-fill the
// edit buffer, so defaults are ignored.
//
// Scanning runs in its own goroutine so that Close wakes a pending read even
// when the reader itself cannot be interrupted, as with a piped os.Stdin.
type Line struct {
	in     io.Reader
	input  *bufio.Scanner
	output io.Writer

	lines chan string
	err   error // set by the scanner before lines is closed
	done  chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

func NewLine(input io.Reader, output io.Writer) *Line {
	return &Line{
		in:     input,
		input:  bufio.NewScanner(input),
		output: output,
		lines:  make(chan string),
		done:   make(chan struct{}),
	}
}

func (l *Line) ReadCommand(prompt string) (string, error) {
	return l.ReadLine(prompt, "")
}

func (l *Line) ReadLine(prompt, _ string) (string, error) {
	select {
	case <-l.done:
		return "", io.EOF
	default:
	}

	fmt.Fprint(l.output, prompt)
	l.startOnce.Do(func() { go l.scan() })

	select {
	case line, ok := <-l.lines:
		if !ok {
			if l.err != nil {
				return "", fmt.Errorf("read line: %w", l.err)
			}
			return "", io.EOF
		}
		return line, nil
	case <-l.done:
		return "", io.EOF
	}
}

func (l *Line) scan() {
	defer close(l.lines)
	for l.input.Scan() {
		select {
		case l.lines <- l.input.Text():
		case <-l.done:
			return
		}
	}
	select {
	case <-l.done:
	default:
		l.err = l.input.Err()
	}
}

func (l *Line) Writer() io.Writer {
	return l.output
}

// Close stops pending and future reads and closes the reader if it can be
// closed
func (l *Line) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		if c, ok := l.in.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
