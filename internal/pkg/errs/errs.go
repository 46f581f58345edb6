// Package errs wraps cockroachdb/errors and adds the Kind-tagged Error that
// crosses from the HTTP adapter into the workflows.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

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

// Mark attaches reference for Is without changing err's message. A nil err
// yields reference itself.
func Mark(err error, reference error) error {
	if err == nil {
		return reference
	}
	return cr.Mark(err, reference)
}

// Is also sees marks, which the standard library errors.Is does not.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines
// non-blank lines. maxLines <= 0 keeps everything.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
