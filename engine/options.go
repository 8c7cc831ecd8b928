package engine

import (
	"errors"
	"fmt"
	"log"
	"os"

	"particle-field/config"
)

// LoadOptions layers defaults, the YAML file, the Starlark preset and a
// particle count override, in that order. Empty paths and a zero count are
// skipped. A missing config file is not an error so hosts can create it on
// first save.
func LoadOptions(configPath, presetPath string, count int) (config.Options, error) {
	opts := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		switch {
		case err == nil:
			opts = loaded
		case errors.Is(err, os.ErrNotExist):
			log.Println("LoadOptions:", configPath, "not found, using defaults")
		default:
			return opts, err
		}
	}

	if presetPath != "" {
		preset, err := LoadPreset(presetPath, opts)
		if err != nil {
			return opts, err
		}
		opts = preset
	}

	if count > 0 {
		opts.ParticleCount = count
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options: %w", err)
	}
	return opts, nil
}
