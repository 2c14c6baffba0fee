package scoring

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML shape of a substitution table.
//
//	alphabet: ACGT
//	matrix:
//	  - [1, -1, -1, -1]
//	  ...
type tableFile struct {
	Alphabet string      `yaml:"alphabet"`
	Matrix   [][]float64 `yaml:"matrix"`
}

// LoadTable decodes a YAML substitution table from r and validates it with
// NewTable.
func LoadTable(r io.Reader) (*Table, error) {
	var tf tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("scoring: failed to parse table: %w", err)
	}

	t, err := NewTable(tf.Alphabet, tf.Matrix)
	if err != nil {
		return nil, fmt.Errorf("scoring: invalid table: %w", err)
	}

	return t, nil
}

// LoadTableFile reads a YAML substitution table from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: failed to open table file %q: %w", path, err)
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
