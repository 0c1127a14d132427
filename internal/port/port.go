// Package port contains platform helpers for vector tables.
package port

import (
	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/log"
)

var _ vector.Setter = MirrorSetter{}

// MirrorSetter ignores the table it is given and writes the slot of its
// target table instead. It emulates a platform where the configured vector
// table address is a dummy and the real vectors live elsewhere.
type MirrorSetter struct {
	Target *vector.Table
}

// Set writes the handler into the slot of the target table.
func (s MirrorSetter) Set(_ *vector.Table, handler vector.Handler, slot uint8) {
	s.Target.Write(int(slot), handler)
}

// Relocate copies the vector table from ROM to a new table at ramBase and
// returns it. Handlers registered afterwards have to be written to the
// returned table, which is what the vector table offset register points to.
// The RAM table keeps the default handler of the ROM table.
func Relocate(logger *log.Logger, rom *vector.Table, ramBase uint32) *vector.Table {
	ram := vector.NewWithDefault(ramBase, rom.Len(), rom.Default())
	copied := rom.CopyTo(ram)

	logger.Debug("Vector table moved to RAM",
		log.Hex("rom", rom.Base()),
		log.Hex("vtor", ramBase),
		log.Int("slots", copied))
	return ram
}
