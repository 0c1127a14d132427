// Package options contains the program options.
package options

// Parameters contains input options.
type Parameters struct {
	Script string   `flag:"script" usage:"YAML firing script to run"`
	Batch  string   `flag:"batch" usage:"run all firing scripts matching the pattern (e.g. scripts/*.yaml)"`
	Irqs   []string `arg:"positional" usage:"interrupts to fire in order (default: all)"`
}

// Flags contains behavior options.
type Flags struct {
	Relocate string `flag:"relocate" usage:"move the vector table from flash to RAM at this address"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interrupt simulator.
type Program struct {
	Parameters
	Flags

	RAMBase uint32 // parsed Relocate address, 0 if the vectors stay emulated
}
