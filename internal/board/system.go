package board

import (
	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/irqbind/internal/port"
	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/log"
)

const (
	// VectorTableAddress is the dummy vector table address used when the
	// vectors are emulated.
	VectorTableAddress = 0x0

	// FlashVectorTableAddress is the address of the vector table in flash.
	FlashVectorTableAddress = 0x08000000
)

// Provider is the interrupt provider of the board.
type Provider = irq.Provider[Irq]

// System is the startup context of the board. It is created once and
// passed to everything that binds interrupts.
type System struct {
	logger   *log.Logger
	vectors  *vector.Table
	provider *Provider
}

// NewSystem returns a board with emulated vectors. The provider is configured
// with the dummy vector table address and writes into the emulated vectors
// through a port.MirrorSetter.
func NewSystem(logger *log.Logger) *System {
	s := &System{
		logger: logger,
	}
	s.vectors = vector.NewWithDefault(VectorTableAddress, IrqCount, s.unhandled)

	configured := vector.New(VectorTableAddress, IrqCount)
	setter := vector.NewLoggingSetter(logger, port.MirrorSetter{Target: s.vectors})
	s.provider = irq.New[Irq](logger, configured, setter)
	return s
}

// NewRelocatedSystem returns a board whose flash vector table is moved to RAM
// at ramBase before any handler is registered. The provider writes the RAM
// table directly.
func NewRelocatedSystem(logger *log.Logger, ramBase uint32) *System {
	s := &System{
		logger: logger,
	}
	rom := vector.NewWithDefault(FlashVectorTableAddress, IrqCount, s.unhandled)
	s.vectors = port.Relocate(logger, rom, ramBase)

	setter := vector.NewLoggingSetter(logger, nil)
	s.provider = irq.New[Irq](logger, s.vectors, setter)
	return s
}

// Provider returns the interrupt provider of the board.
func (s *System) Provider() *Provider {
	return s.provider
}

// Vectors returns the vector table that is consulted when an interrupt fires.
func (s *System) Vectors() *vector.Table {
	return s.vectors
}

// unhandled is the default handler of every vector slot.
func (s *System) unhandled() {
	s.logger.Warn("Interrupt fired without handler")
}
