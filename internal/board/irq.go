// Package board describes the emulated demo board: its interrupt enumeration,
// vector table and the provider that binds handlers to it.
package board

import (
	"fmt"
	"strings"
)

// Irq is an interrupt of the demo board. Its value is the vector table slot.
type Irq uint8

// Interrupts of the demo board, in vector table order.
const (
	DMA Irq = iota
	USART1
	USART2
	USB
	ADC1
	ADC2
	SPI1

	IrqCount = int(SPI1) + 1
)

var irqNames = [IrqCount]string{
	DMA:    "DMA",
	USART1: "USART1",
	USART2: "USART2",
	USB:    "USB",
	ADC1:   "ADC1",
	ADC2:   "ADC2",
	SPI1:   "SPI1",
}

func (i Irq) String() string {
	if int(i) < IrqCount {
		return irqNames[i]
	}
	return fmt.Sprintf("IRQ%d", uint8(i))
}

// Irqs returns all interrupts of the board in vector table order.
func Irqs() []Irq {
	irqs := make([]Irq, IrqCount)
	for i := range irqs {
		irqs[i] = Irq(i)
	}
	return irqs
}

// IrqFromString returns the interrupt with the given name, case insensitive.
func IrqFromString(name string) (Irq, error) {
	for i, irqName := range irqNames {
		if strings.EqualFold(name, irqName) {
			return Irq(i), nil
		}
	}
	return 0, fmt.Errorf("unknown interrupt '%s'", name)
}
