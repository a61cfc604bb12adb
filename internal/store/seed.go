// ABOUTME: Seed file loading for a fixed starting data set
// ABOUTME: Supports YAML and TOML, selected by file extension

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Seed describes a starting data set for a fresh store. Entries without an
// id get one assigned when the seed is applied.
type Seed struct {
	Authors  []Author  `yaml:"authors" toml:"authors"`
	Posts    []Post    `yaml:"posts" toml:"posts"`
	Comments []Comment `yaml:"comments" toml:"comments"`
}

// LoadSeed reads and parses a seed file. The format is chosen by extension:
// .yaml/.yml or .toml.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed Seed
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", ext)
	}

	return &seed, nil
}
