// Package attr parses attribute directives, the small "key=value" / "key"
// language views use to describe node attributes.
package attr

import (
	"errors"
	"fmt"
	"strings"
)

// Autofocus is the reserved directive key that requests input focus once the
// node is mounted.
const Autofocus = "autofocus"

// ErrMalformed is returned for directives that carry no key.
var ErrMalformed = errors.New("malformed attribute directive")

// Directive is the parsed form of a single attribute directive.
type Directive struct {
	Key   string
	Value string
	Flag  bool // bare "key" with no '='
}

// Parse splits s on its first '='. Everything after that '=' is the value,
// so "style=a=b" yields key "style" and value "a=b".
func Parse(s string) (Directive, error) {
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return Directive{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return Directive{Key: key, Value: value, Flag: !found}, nil
}

// ParseAll parses every directive in order. Malformed entries are returned
// joined into err; the well-formed ones are still returned.
func ParseAll(list []string) ([]Directive, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]Directive, 0, len(list))
	var errs []error
	for _, s := range list {
		d, err := Parse(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, d)
	}
	return out, errors.Join(errs...)
}

// IsAutofocus reports whether d is the reserved autofocus directive.
func (d Directive) IsAutofocus() bool {
	return d.Key == Autofocus
}

// String renders d back into directive form.
func (d Directive) String() string {
	if d.Flag {
		return d.Key
	}
	return d.Key + "=" + d.Value
}
