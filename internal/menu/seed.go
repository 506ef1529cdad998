package menu

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SeedDefault = "default"
	SeedEmpty   = "empty"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Items []Item `yaml:"items"`
}

// ParseSeed decodes a YAML document of the form `items: [...]`.
func ParseSeed(data []byte) ([]Item, error) {
	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return doc.Items, nil
}

// LoadSeed resolves a seed source: SeedDefault (or "") for the bundled
// menu, SeedEmpty for no items, anything else is a YAML file path.
func LoadSeed(source string) ([]Item, error) {
	switch source {
	case "", SeedDefault:
		return ParseSeed(defaultSeed)
	case SeedEmpty:
		return nil, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", source, err)
	}
	return ParseSeed(data)
}
