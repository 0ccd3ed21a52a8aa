package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax checks that the file at path is syntactically valid
// YAML before it is handed to koanf, so parse errors point at the file
// rather than surfacing as merge failures.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}
