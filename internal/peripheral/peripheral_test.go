package peripheral

import (
	"testing"

	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type peripherals struct {
	sys    *board.System
	spi    *SPI
	serial *Serial
	usb    *USB
	adc    *ADC
	uart2  UART2
}

func newPeripherals(t *testing.T) peripherals {
	t.Helper()
	logger := log.NewTestLogger(t)
	sys := board.NewSystem(logger)
	provider := sys.Provider()

	return peripherals{
		sys:    sys,
		spi:    NewSPI(logger, provider),
		serial: NewSerial(logger, provider),
		usb:    NewUSB(logger, provider),
		adc:    NewADC(logger, provider),
		uart2:  NewUART2Console(logger, provider).Instance(),
	}
}

// flags returns the handled state of every peripheral in a fixed order.
func (p peripherals) flags() map[string]bool {
	return map[string]bool{
		"spi":    p.spi.TransferDone(),
		"usart1": p.serial.USART(),
		"dma":    p.serial.DMA(),
		"usb":    p.usb.Event(),
		"adc1":   p.adc.ADC1(),
		"adc2":   p.adc.ADC2(),
		"usart2": p.uart2.Received(),
	}
}

func TestFireSingleInterrupt(t *testing.T) {
	tests := []struct {
		irq  board.Irq
		flag string
	}{
		{irq: board.DMA, flag: "dma"},
		{irq: board.USART1, flag: "usart1"},
		{irq: board.USART2, flag: "usart2"},
		{irq: board.USB, flag: "usb"},
		{irq: board.ADC1, flag: "adc1"},
		{irq: board.ADC2, flag: "adc2"},
		{irq: board.SPI1, flag: "spi"},
	}

	for _, tt := range tests {
		t.Run(tt.irq.String(), func(t *testing.T) {
			p := newPeripherals(t)
			for name, set := range p.flags() {
				assert.False(t, set, name)
			}

			p.sys.Vectors().Fire(int(tt.irq))

			for name, set := range p.flags() {
				assert.Equal(t, name == tt.flag, set, name)
			}
		})
	}
}

func TestADCFiresOnlyADC2(t *testing.T) {
	p := newPeripherals(t)

	p.sys.Vectors().Fire(int(board.ADC2))

	assert.True(t, p.adc.ADC2())
	assert.False(t, p.adc.ADC1())
}

func TestFireAll(t *testing.T) {
	p := newPeripherals(t)

	for _, id := range board.Irqs() {
		p.sys.Vectors().Fire(int(id))
	}

	for name, set := range p.flags() {
		assert.True(t, set, name)
	}
}

func TestBindingKinds(t *testing.T) {
	p := newPeripherals(t)

	bindings := p.sys.Provider().Bindings()
	assert.Len(t, bindings, board.IrqCount)

	kinds := map[board.Irq]string{}
	for _, binding := range bindings {
		kinds[binding.ID] = binding.Kind.String()
	}
	assert.Equal(t, "multi method", kinds[board.DMA])
	assert.Equal(t, "multi method", kinds[board.USART1])
	assert.Equal(t, "free function", kinds[board.USART2])
	assert.Equal(t, "fixed", kinds[board.USB])
	assert.Equal(t, "multi fixed", kinds[board.ADC1])
	assert.Equal(t, "multi fixed", kinds[board.ADC2])
	assert.Equal(t, "method", kinds[board.SPI1])
}

func TestRebindingReplacesHolder(t *testing.T) {
	logger := log.NewTestLogger(t)
	sys := board.NewSystem(logger)

	first := NewSPI(logger, sys.Provider())
	second := NewSPI(logger, sys.Provider())
	sys.Vectors().Fire(int(board.SPI1))

	assert.False(t, first.TransferDone())
	assert.True(t, second.TransferDone())
	assert.False(t, first.Bound())
	assert.True(t, second.Bound())
}

func TestUART2Singleton(t *testing.T) {
	logger := log.NewTestLogger(t)
	sys := board.NewSystem(logger)
	console := NewUART2Console(logger, sys.Provider())

	// not registered before the first instance request
	_, ok := sys.Provider().Binding(board.USART2)
	assert.False(t, ok)

	uart := console.Instance()
	assert.True(t, uart == console.Instance())
	assert.False(t, uart.Received())

	sys.Vectors().Fire(int(board.USART2))
	assert.True(t, uart.Received())
}

func TestUART2OutsideConsoleIsRejected(t *testing.T) {
	manual := &uart2{logger: log.NewTestLogger(t)}

	t.Run("received", func(t *testing.T) {
		defer func() {
			assert.NotNil(t, recover())
		}()
		manual.Received()
	})

	t.Run("receive", func(t *testing.T) {
		defer func() {
			assert.NotNil(t, recover())
		}()
		manual.receive()
	})
}

func TestBoundState(t *testing.T) {
	p := newPeripherals(t)

	assert.True(t, p.spi.Bound())
	assert.True(t, p.usb.Bound())
	assert.True(t, p.serial.Bound(board.USART1))
	assert.True(t, p.serial.Bound(board.DMA))
	assert.True(t, p.adc.Bound(board.ADC1))
	assert.True(t, p.adc.Bound(board.ADC2))
	assert.False(t, p.adc.Bound(board.USB))
}
