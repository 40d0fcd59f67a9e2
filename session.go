package calc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/log"
	"github.com/fatih/color"
)

// DefaultPrompt is written before each line a Session reads.
const DefaultPrompt = "calc> "

// ExitCommand ends a session when it is the whole line.
const ExitCommand = "exit"

// Session reads lines, evaluates them against one environment, and prints
// the results. It is not safe to use a Session concurrently.
type Session struct {
	env     *Env
	prompt  string
	errc    *color.Color
	eofexit bool
}

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption(*Session)
}

type (
	promptopt string
	coloropt  bool
	eofopt    bool
)

func (o promptopt) sessionOption(s *Session) { s.prompt = string(o) }

func (o coloropt) sessionOption(s *Session) {
	if o {
		s.errc.EnableColor()
	} else {
		s.errc.DisableColor()
	}
}

func (o eofopt) sessionOption(s *Session) { s.eofexit = bool(o) }

// Prompt sets the prompt written before each read. The default is
// DefaultPrompt.
func Prompt(p string) SessionOption {
	return promptopt(p)
}

// Colorize sets whether error lines are written in red. The default is
// false, so that output is plain text.
func Colorize(on bool) SessionOption {
	return coloropt(on)
}

// ExitOnEOF sets whether the end of the input ends the session. The default
// is true. If it is false, reaching the end of the input is reported like
// any other read error and the session continues until its context is
// cancelled.
func ExitOnEOF(exit bool) SessionOption {
	return eofopt(exit)
}

// NewSession creates a session which evaluates lines in env. If env is nil,
// the session starts with an empty environment.
func NewSession(env *Env, opts ...SessionOption) *Session {
	if env == nil {
		env = NewEnv()
	}
	s := Session{
		env:     env,
		prompt:  DefaultPrompt,
		errc:    color.New(color.FgRed),
		eofexit: true,
	}
	s.errc.DisableColor()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.sessionOption(&s)
	}
	return &s
}

// Env returns the session's environment.
func (s *Session) Env() *Env {
	return s.env
}

// Exec evaluates one line in the session's environment. Surrounding
// whitespace is ignored. The exit command is not recognized here.
func (s *Session) Exec(line string) (float64, error) {
	toks := Tokenize(strings.TrimSpace(line))
	log.Debugf("evaluating %q as %d tokens", line, len(toks))
	r, err := Parse(toks, s.env)
	if err != nil {
		var ierr InputError
		if errors.As(err, &ierr) && ierr.Pos() < len(toks) {
			log.Debugf("%v at token %d %q", err, ierr.Pos(), toks[ierr.Pos()])
		} else {
			log.Debugf("%v at end of line", err)
		}
		return 0, err
	}
	if len(toks) > 2 && toks[1] == "=" {
		log.Debugf("assigned %s = %v", toks[0], r)
	}
	return r, nil
}

// Run reads lines from in until the exit command, the end of the input, or
// the cancellation of ctx. Each line is evaluated and its result or error is
// written to out. Evaluation errors and read errors are reported and do not
// end the session. The returned error is nil after the exit command or the
// end of the input, ctx.Err() if ctx is cancelled, or the error from a
// failed write to out.
//
// ctx is only checked between lines.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	rd := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, s.prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := rd.ReadString('\n')
		last := false
		switch {
		case err == nil:
			// do nothing
		case errors.Is(err, io.EOF) && line != "":
			// Evaluate the unterminated final line. The next read reports
			// EOF on its own.
			last = s.eofexit
		case errors.Is(err, io.EOF) && s.eofexit:
			log.Debugf("end of input")
			return nil
		default:
			log.Debugf("read failed: %v", err)
			if err := s.report(out, "Error reading input"); err != nil {
				return fmt.Errorf("writing error: %w", err)
			}
			continue
		}
		if !utf8.ValidString(line) {
			log.Debugf("line is not valid UTF-8")
			if err := s.report(out, "Error reading input"); err != nil {
				return fmt.Errorf("writing error: %w", err)
			}
			if last {
				return nil
			}
			continue
		}
		line = strings.TrimSpace(line)
		if line == ExitCommand {
			return nil
		}
		r, err := s.Exec(line)
		if err != nil {
			err = s.report(out, "Error: "+err.Error())
		} else {
			_, err = fmt.Fprintln(out, Format(r))
		}
		if err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		if last {
			return nil
		}
	}
}

// Format formats a result the way a Session prints it: in positional
// notation with the fewest digits that read back as v, never with an
// exponent. Infinities are inf and -inf, and NaN is NaN.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// report writes an error line.
func (s *Session) report(out io.Writer, msg string) error {
	_, err := s.errc.Fprintln(out, msg)
	return err
}
