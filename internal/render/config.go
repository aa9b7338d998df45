package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ihworker/custom-authn-mfe/internal/hooks"
)

// MergeDefaults folds configuration defaults into one map. A later
// registration of the same key replaces the earlier one.
func MergeDefaults(defaults []hooks.ConfigDefault) map[string]any {
	out := make(map[string]any, len(defaults))
	for _, d := range defaults {
		out[d.Key] = d.Value
	}
	return out
}

// ConfigYAML encodes values as YAML. Map keys are emitted in sorted order.
func ConfigYAML(values map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
