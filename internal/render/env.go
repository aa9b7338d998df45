package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ihworker/custom-authn-mfe/internal/hooks"
)

// ErrMalformedLine is returned for a non-comment line that is not KEY=VALUE.
var ErrMalformedLine = errors.New("malformed environment assignment")

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Assignment is a single KEY=VALUE line.
type Assignment struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EnvFile concatenates patch texts in registration order. Each patch ends
// with exactly one newline; patches sharing a name are all kept.
func EnvFile(patches []hooks.EnvPatch) string {
	var b strings.Builder
	for _, p := range patches {
		text := strings.TrimRight(p.Text, "\n")
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Assignments parses text into assignments, skipping blank and # lines.
// One pair of surrounding double quotes is removed from values.
func Assignments(text string) ([]Assignment, error) {
	var out []Assignment
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || !keyPattern.MatchString(key) {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrMalformedLine)
		}
		if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			value = value[1 : len(value)-1]
		}
		out = append(out, Assignment{Key: key, Value: value})
	}
	return out, nil
}
