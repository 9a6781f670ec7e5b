// Package urltemplate expands API path templates such as
// "/repos/{owner}/{repo}/pulls/{pull}".
package urltemplate

import (
	"strings"

	"github.com/jmgilman/go/hub/errors"
)

// Values maps placeholder names to their replacement.
type Values map[string]string

// Expand replaces every {name} placeholder in tmpl with values[name].
// Values are inserted verbatim; callers pass values that are already safe
// for a path segment. Values without a matching placeholder are ignored.
//
// Returns an error if a placeholder has no value, a placeholder name is
// empty or a brace is left unterminated.
func Expand(tmpl string, values Values) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", templateError(tmpl, "", "unterminated placeholder")
		}
		name := rest[open+1 : open+end]
		if name == "" {
			return "", templateError(tmpl, name, "empty placeholder name")
		}

		value, ok := values[name]
		if !ok {
			return "", templateError(tmpl, name, "no value for placeholder")
		}
		b.WriteString(value)
		rest = rest[open+end+1:]
	}
}

// MustExpand is like Expand but panics on error. A template that cannot be
// expanded means the calling code was built incorrectly.
func MustExpand(tmpl string, values Values) string {
	path, err := Expand(tmpl, values)
	if err != nil {
		panic(err)
	}
	return path
}

func templateError(tmpl, placeholder, reason string) error {
	err := errors.Newf(errors.CodeInvalidInput, "cannot expand %q: %s", tmpl, reason)
	return errors.WithContextMap(err, map[string]interface{}{
		"template":    tmpl,
		"placeholder": placeholder,
	})
}
