package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a batch description from a YAML file.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing batch YAML: %w", err)
	}

	return &b, nil
}
