package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// ConfigReadError reports a config file that is missing or malformed.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("error reading config file %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// LoadFile reads raw fields from a JSON config file, or a YAML one when the
// extension is .yaml or .yml. Numeric fields are decoded leniently; syntax
// errors are not.
func LoadFile(path string) (RawFields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawFields{}, &ConfigReadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes config content; name only selects the syntax.
func Parse(name string, data []byte) (RawFields, error) {
	var raw RawFields
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return RawFields{}, &ConfigReadError{Path: name, Err: err}
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return RawFields{}, &ConfigReadError{Path: name, Err: err}
		}
	}
	return raw, nil
}
