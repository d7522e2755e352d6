package challenge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// challengeFile is the YAML document shape: a single `challenges` list.
type challengeFile struct {
	Challenges []Challenge `yaml:"challenges"`
}

// LoadFile reads a YAML challenge set from path. Every challenge is
// validated: a non-empty id and a constructible board. Constraint kinds
// are validated during decoding.
func LoadFile(path string) ([]Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("challenge: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML challenge set.
func Parse(data []byte) ([]Challenge, error) {
	var file challengeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("challenge: decode: %w", err)
	}

	for i, ch := range file.Challenges {
		if ch.ID == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrMissingID, i)
		}
		if _, err := ch.Grid(); err != nil {
			return nil, fmt.Errorf("challenge: %s: invalid board: %w", ch.ID, err)
		}
	}

	return file.Challenges, nil
}
