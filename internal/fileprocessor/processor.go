// Package fileprocessor handles firing script selection and processing
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/retroenv/irqbind/internal/config"
	"github.com/retroenv/irqbind/internal/options"
	"github.com/retroenv/irqbind/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var errNoScripts = errors.New("no firing scripts match the batch pattern")

// ProcessFile runs the simulation for the script configured in the options
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if opts.Script != "" {
		logger.Info("Running script", log.String("file", opts.Script))
	}

	if _, err := pipeline.New(logger).Execute(ctx, opts); err != nil {
		return fmt.Errorf("simulating: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of scripts to process based on options.
// Without a batch pattern the single configured script is returned, which
// is empty when the interrupts are passed as arguments.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Script}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w '%s'", errNoScripts, opts.Batch)
	}
	return matches, nil
}

// PrintBanner prints the application banner
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info(config.Name, log.String("version", buildinfo.Version(version, commit, date)))
}
