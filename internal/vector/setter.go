package vector

import (
	"github.com/retroenv/retrogolib/log"
)

// Setter defines how a handler is written into a vector table slot.
// Ports can provide their own implementation to emulate hardware specifics.
type Setter interface {
	Set(table *Table, handler Handler, slot uint8)
}

var (
	_ Setter = DirectSetter{}
	_ Setter = (*LoggingSetter)(nil)
)

// DirectSetter assigns the handler to the slot of the given table.
type DirectSetter struct{}

// Set writes the handler into the slot.
func (DirectSetter) Set(table *Table, handler Handler, slot uint8) {
	table.Write(int(slot), handler)
}

// LoggingSetter wraps another setter and logs every slot write.
type LoggingSetter struct {
	logger *log.Logger
	next   Setter
}

// NewLoggingSetter returns a setter that logs writes and delegates to next.
// A nil next setter delegates to DirectSetter.
func NewLoggingSetter(logger *log.Logger, next Setter) *LoggingSetter {
	if next == nil {
		next = DirectSetter{}
	}
	return &LoggingSetter{
		logger: logger,
		next:   next,
	}
}

// Set logs the slot address and delegates the write.
func (s *LoggingSetter) Set(table *Table, handler Handler, slot uint8) {
	s.logger.Debug("Writing vector slot",
		log.Uint8("slot", slot),
		log.Hex("address", table.SlotAddress(int(slot))))
	s.next.Set(table, handler, slot)
}
