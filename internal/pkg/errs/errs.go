package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that errors.Is(err, markErr) holds while keeping err's message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return marked{err: cr.Mark(err, markErr)}
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// marked lets the standard library's errors.Is see cockroach marks.
type marked struct {
	err error
}

func (m marked) Error() string                 { return m.err.Error() }
func (m marked) Unwrap() error                 { return m.err }
func (m marked) Is(target error) bool          { return cr.Is(m.err, target) }
func (m marked) Format(s fmt.State, verb rune) { cr.FormatError(m.err, s, verb) }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
