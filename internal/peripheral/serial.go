package peripheral

import (
	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/retrogolib/log"
)

// Serial handles USART1 receive and its DMA channel, one method per interrupt.
type Serial struct {
	logger *log.Logger
	binder *irq.MultiMethodBinder[board.Irq, *Serial]

	usart bool
	dma   bool
}

// NewSerial returns a serial peripheral bound to USART1 and DMA.
func NewSerial(logger *log.Logger, provider *board.Provider) *Serial {
	s := &Serial{logger: logger}
	s.binder = irq.BindMethods(provider, s,
		irq.On(board.USART1, (*Serial).usart1Received),
		irq.On(board.DMA, (*Serial).dmaComplete),
	)
	return s
}

func (s *Serial) usart1Received() {
	s.logger.Info("USART1 interrupt")
	s.usart = true
}

func (s *Serial) dmaComplete() {
	s.logger.Info("DMA interrupt")
	s.dma = true
}

// USART returns whether the USART1 interrupt was handled.
func (s *Serial) USART() bool {
	return s.usart
}

// DMA returns whether the DMA interrupt was handled.
func (s *Serial) DMA() bool {
	return s.dma
}

// Bound returns whether the peripheral still owns the vector slot of the interrupt.
func (s *Serial) Bound(id board.Irq) bool {
	return s.binder.Current(id)
}
