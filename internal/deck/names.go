package deck

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/deckhand/internal/card"
)

// Names overrides major arcana names, keyed by order
type Names map[int]string

// NameConfig is the layout of a names file
type NameConfig struct {
	MajorArcana map[string]string `toml:"major_arcana"`
}

// Major returns the name for the major arcana card with the given order,
// falling back to the default name.
func (n Names) Major(order int) string {
	if name, ok := n[order]; ok && name != "" {
		return name
	}
	return card.MajorArcanaNames[order]
}

// LoadNames reads major arcana names from a TOML file such as
//
//	[major_arcana]
//	"00" = "The Fool"
//	"10" = "The Wheel of Fortune"
func LoadNames(path string) (Names, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("names file not found: %s", path)
	}

	var config NameConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing names file: %w", err)
	}

	return parseNames(config)
}

func parseNames(config NameConfig) (Names, error) {
	names := make(Names, len(config.MajorArcana))
	for key, name := range config.MajorArcana {
		order, err := strconv.Atoi(key)
		if err != nil || order < 0 || order >= card.NumMajor || len(key) != 2 {
			return nil, fmt.Errorf("invalid major arcana number %q (expected 00-21)", key)
		}
		names[order] = name
	}
	return names, nil
}
