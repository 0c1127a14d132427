// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/config"
	"github.com/retroenv/irqbind/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard) // usage is printed once by UsageError.ShowUsage
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	opts.Irqs = flags.Args()

	if err := validateArgs(opts); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			usageErr.flags = flags
		}
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	e.writeUsage(os.Stdout)
}

func (e *UsageError) writeUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "usage: %s [options] [interrupt ...]\n\n", config.Name)
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks that interrupts are only given when no script is used
// and that every argument is a board interrupt.
func validateArgs(opts options.Program) error {
	if opts.Script != "" && opts.Batch != "" {
		return &UsageError{
			msg: "a firing script can not be passed together with a batch pattern",
		}
	}
	if (opts.Script != "" || opts.Batch != "") && len(opts.Irqs) > 0 {
		return &UsageError{
			msg: "interrupts can not be passed together with a firing script",
		}
	}
	for _, arg := range opts.Irqs {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after interrupts, please pass options first", arg),
			}
		}
		if _, err := board.IrqFromString(arg); err != nil {
			return fmt.Errorf("invalid argument: %w", err)
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Relocate == "" {
		return nil
	}

	s := strings.TrimPrefix(strings.ToLower(opts.Relocate), "0x")
	address, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("parsing relocation address '%s': %w", opts.Relocate, err)
	}
	if address == 0 {
		return errors.New("relocation address must not be 0")
	}
	if address%4 != 0 {
		return fmt.Errorf("relocation address 0x%08X is not word aligned", address)
	}
	opts.RAMBase = uint32(address)
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Script, "script", "", "YAML firing script to run instead of the interrupt arguments")
	flags.StringVar(&opts.Batch, "batch", "", "run all firing scripts matching the given pattern, for example scripts/*.yaml")
	flags.StringVar(&opts.Relocate, "relocate", "", "move the vector table from flash to RAM at this hex address, for example 0x2001FC00")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
