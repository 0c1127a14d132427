package peripheral

import (
	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/retrogolib/log"
)

// ADC handles the conversion complete interrupts of both converters through
// one HandleIRQ method that dispatches on the interrupt.
type ADC struct {
	logger *log.Logger
	binder *irq.MultiFixedBinder[board.Irq]

	adc1 bool
	adc2 bool
}

// NewADC returns an ADC peripheral bound to ADC1 and ADC2.
func NewADC(logger *log.Logger, provider *board.Provider) *ADC {
	a := &ADC{logger: logger}
	a.binder = provider.BindFixedMulti(a, board.ADC1, board.ADC2)
	return a
}

// HandleIRQ handles the interrupt of one of the converters.
func (a *ADC) HandleIRQ(id board.Irq) {
	a.logger.Info("ADC interrupt", log.Stringer("irq", id))

	switch id {
	case board.ADC1:
		a.adc1 = true
	case board.ADC2:
		a.adc2 = true
	}
}

// ADC1 returns whether the ADC1 interrupt was handled.
func (a *ADC) ADC1() bool {
	return a.adc1
}

// ADC2 returns whether the ADC2 interrupt was handled.
func (a *ADC) ADC2() bool {
	return a.adc2
}

// Bound returns whether the peripheral still owns the vector slot of the interrupt.
func (a *ADC) Bound(id board.Irq) bool {
	return a.binder.Current(id)
}
