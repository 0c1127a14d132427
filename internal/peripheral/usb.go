package peripheral

import (
	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/retrogolib/log"
)

var _ irq.Handler = (*usbHandler)(nil)

// USB handles the USB interrupt through the fixed HandleIRQ method.
type USB struct {
	logger *log.Logger
	binder *irq.FixedBinder[board.Irq]

	event bool
}

// usbHandler keeps HandleIRQ off the exported method set of USB.
type usbHandler USB

func (h *usbHandler) HandleIRQ() {
	h.logger.Info("USB interrupt")
	h.event = true
}

// NewUSB returns a USB peripheral bound to the USB interrupt.
func NewUSB(logger *log.Logger, provider *board.Provider) *USB {
	u := &USB{logger: logger}
	u.binder = provider.BindFixed(board.USB, (*usbHandler)(u))
	return u
}

// Event returns whether the USB interrupt was handled.
func (u *USB) Event() bool {
	return u.event
}

// Bound returns whether the peripheral still owns the USB vector slot.
func (u *USB) Bound() bool {
	return u.binder.Current()
}
