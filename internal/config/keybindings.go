// Package config loads declarative keybindings from TOML files.
//
// The file format:
//
//	[[binding]]
//	keys = "Ctrl+Shift+P"
//	command = "palette.open"
//	when = "editorTextFocus"
//	weight = 10
//
// Loaded bindings form the dispatcher's static set; runtime registrations
// go through the keybinding registry instead.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/keybinding"
	"github.com/dshills/edithost/internal/input/when"
)

// bindingFile is the TOML document shape.
type bindingFile struct {
	Bindings []bindingConfig `toml:"binding"`
}

// bindingConfig is one declared binding.
type bindingConfig struct {
	Keys    string `toml:"keys"`
	Command string `toml:"command"`
	When    string `toml:"when"`
	Weight  int    `toml:"weight"`
}

// Load reads static binding entries from a TOML file.
// A missing file is not an error and yields no entries.
func Load(path string) ([]keybinding.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading keybindings file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes static binding entries from TOML content.
func Parse(data []byte) ([]keybinding.Entry, error) {
	var file bindingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding keybindings: %w", err)
	}

	entries := make([]keybinding.Entry, 0, len(file.Bindings))
	for i, b := range file.Bindings {
		if b.Command == "" {
			return nil, fmt.Errorf("binding %d: missing command", i)
		}

		chord, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Command, err)
		}

		pred, err := when.Parse(b.When)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Command, err)
		}

		entries = append(entries, keybinding.Entry{
			Chord:         chord,
			Command:       b.Command,
			When:          pred,
			WeightPrimary: b.Weight,
		})
	}
	return entries, nil
}
