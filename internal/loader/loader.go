// Package loader handles firing script loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/irqbind/internal/options"
	"github.com/retroenv/irqbind/internal/script"
)

// Loader handles loading firing scripts from disk.
type Loader struct{}

// New creates a new script loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses the firing script named in the options.
// It returns nil if no script is configured.
func (l *Loader) Load(opts options.Program) (*script.Script, error) {
	if opts.Script == "" {
		return nil, nil
	}

	data, err := os.ReadFile(opts.Script)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", opts.Script, err)
	}

	s, err := script.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", opts.Script, err)
	}
	return s, nil
}
