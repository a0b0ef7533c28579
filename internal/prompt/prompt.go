// Package prompt implements one-prompt-out, one-line-in console exchanges.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when a session has no input stream.
var ErrNoInput = errors.New("no input stream")

// Session writes prompts to out and reads answers from in. Lines are read a
// byte at a time so nothing past the current line is consumed from in.
type Session struct {
	in  io.Reader
	out io.Writer

	// skipLF drops the LF of a CRLF pair whose CR already ended a line.
	skipLF bool
}

// New returns a session over in and out. A nil out discards prompts.
func New(in io.Reader, out io.Writer) *Session {
	if out == nil {
		out = io.Discard
	}
	return &Session{in: in, out: out}
}

// Out returns the session's output writer.
func (s *Session) Out() io.Writer { return s.out }

// Printf writes formatted text to the session output.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Println writes a line to the session output.
func (s *Session) Println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// Ask prints message and returns the next raw line, without its terminator.
func (s *Session) Ask(message string) (string, error) {
	fmt.Fprint(s.out, message)
	return s.ReadLine()
}

// YesNo asks until the answer is one of y, yes, n or no (any case). A blank
// answer selects defaultYes. On a read error defaultYes is returned with the error.
func (s *Session) YesNo(message string, defaultYes bool) (bool, error) {
	for {
		text, err := s.Ask(message)
		if err != nil {
			return defaultYes, err
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(s.out, "Please answer yes or no (y/n).")
		}
	}
}

// ReadLine reads until either LF or CR so Enter works in normal and raw
// terminal modes. A CRLF pair ends a single line.
func (s *Session) ReadLine() (string, error) {
	if s.in == nil {
		return "", ErrNoInput
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := s.in.Read(one[:])
		if n > 0 {
			c := one[0]
			if s.skipLF {
				s.skipLF = false
				if c == '\n' {
					continue
				}
			}
			switch c {
			case '\n':
				return string(buf), nil
			case '\r':
				s.skipLF = true
				return string(buf), nil
			default:
				buf = append(buf, c)
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}

// YesNoHint renders the conventional [Y/n] or [y/N] suffix.
func YesNoHint(defaultYes bool) string {
	if defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}
