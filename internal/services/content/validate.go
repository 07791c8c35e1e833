package content

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalid is returned (wrapped with the reasons) when submitted content
// fails validation.
var ErrInvalid = errors.New("invalid content")

// ErrConflict is returned when a segment slug is already taken.
var ErrConflict = errors.New("already exists")

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// validator collects every problem with a record before failing.
type validator struct {
	problems []string
}

func (v *validator) add(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add("%s is required", field)
	}
}

func (v *validator) maxLen(field, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		v.add("%s must be at most %d characters", field, n)
	}
}

func (v *validator) order(field string, n int) {
	if n < 0 {
		v.add("%s must not be negative", field)
	}
}

func (v *validator) email(field, value string) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.add("%s must be a valid email address", field)
	}
}

// absoluteURL accepts http and https URLs with a host.
func (v *validator) absoluteURL(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.add("%s must be an absolute http(s) URL", field)
	}
}

func (v *validator) slug(field, value string) {
	if !slugPattern.MatchString(value) {
		v.add("%s may only contain letters, numbers, hyphens and underscores", field)
	}
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(v.problems, "; "))
}
