package problems

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is the document shape of a problem-set file.
type Set struct {
	Problems []Problem `yaml:"problems"`
}

// LoadSet decodes a YAML problem set from r and validates every problem.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func LoadSet(r io.Reader) ([]Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("problems: decode set: %w", err)
	}
	for i, p := range set.Problems {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("problems: entry %d: %w", i, err)
		}
	}

	return set.Problems, nil
}

// LoadSetFile opens path and decodes it with LoadSet.
func LoadSetFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problems: open set: %w", err)
	}
	defer f.Close()

	return LoadSet(f)
}

// WriteSet encodes ps as a YAML problem set.
func WriteSet(w io.Writer, ps []Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Set{Problems: ps}); err != nil {
		return fmt.Errorf("problems: encode set: %w", err)
	}

	return enc.Close()
}
