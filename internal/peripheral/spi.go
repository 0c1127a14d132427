// Package peripheral contains the demo peripherals of the board. Each one
// binds its interrupts with a different binding strategy.
package peripheral

import (
	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/retrogolib/log"
)

// SPI handles the SPI1 interrupt with a method chosen at bind time.
type SPI struct {
	logger *log.Logger
	binder *irq.MethodBinder[board.Irq, *SPI]

	transferDone bool
}

// NewSPI returns an SPI peripheral bound to SPI1.
func NewSPI(logger *log.Logger, provider *board.Provider) *SPI {
	s := &SPI{logger: logger}
	s.binder = irq.BindMethod(provider, board.SPI1, s, (*SPI).transferComplete)
	return s
}

func (s *SPI) transferComplete() {
	s.logger.Info("SPI1 interrupt")
	s.transferDone = true
}

// TransferDone returns whether the SPI1 interrupt was handled.
func (s *SPI) TransferDone() bool {
	return s.transferDone
}

// Bound returns whether the peripheral still owns the SPI1 vector slot.
func (s *SPI) Bound() bool {
	return s.binder.Current()
}
