// Package output centralizes serialization of synthesis and
// derivation results for the CLI: JSON or YAML to a writer.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result writes data to out in the requested format ("json" or "yaml").
func Result(data interface{}, format string, out io.Writer) error {
	switch format {
	case "json":
		return resultJSON(data, out)
	case "yaml":
		return resultYAML(data, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func resultJSON(data interface{}, out io.Writer) error {
	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	_, err = out.Write(append(serialized, '\n'))
	return err
}

func resultYAML(data interface{}, out io.Writer) error {
	serialized, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	_, err = out.Write(serialized)
	return err
}
