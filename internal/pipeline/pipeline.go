// Package pipeline orchestrates one simulated interrupt run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/loader"
	"github.com/retroenv/irqbind/internal/options"
	"github.com/retroenv/irqbind/internal/peripheral"
	"github.com/retroenv/irqbind/internal/script"
	"github.com/retroenv/irqbind/internal/simulator"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the board startup and the interrupt firing.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// Result of a run.
type Result struct {
	Report  simulator.Report[board.Irq]
	Handled map[board.Irq]bool // handled state of every board interrupt
}

// New creates a new simulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// peripherals holds all demo peripherals of a run.
type peripherals struct {
	spi    *peripheral.SPI
	serial *peripheral.Serial
	usb    *peripheral.USB
	adc    *peripheral.ADC
	uart2  peripheral.UART2
}

// Execute starts the board, binds all peripherals and fires the interrupts
// selected by the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*Result, error) {
	sequence, err := p.sequence(opts)
	if err != nil {
		return nil, fmt.Errorf("building firing sequence: %w", err)
	}

	sys := p.startBoard(opts)
	devices := p.bindPeripherals(sys)

	driver := simulator.New[board.Irq](p.logger, sys.Vectors(), sys.Provider())
	report, err := driver.Run(ctx, sequence)
	if err != nil {
		return nil, fmt.Errorf("running simulation: %w", err)
	}

	result := &Result{
		Report:  report,
		Handled: devices.handled(),
	}
	p.printSummary(opts, result)
	return result, nil
}

// sequence returns the interrupts to fire: the script steps, the interrupt
// arguments or every board interrupt once.
func (p *Pipeline) sequence(opts options.Program) ([]board.Irq, error) {
	s, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}
	if s != nil {
		return script.Resolve(s, board.IrqFromString)
	}

	if len(opts.Irqs) == 0 {
		return board.Irqs(), nil
	}

	ids := make([]board.Irq, 0, len(opts.Irqs))
	for _, name := range opts.Irqs {
		id, err := board.IrqFromString(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// startBoard creates the board, relocating the vector table if requested.
func (p *Pipeline) startBoard(opts options.Program) *board.System {
	if opts.RAMBase != 0 {
		return board.NewRelocatedSystem(p.logger, opts.RAMBase)
	}
	return board.NewSystem(p.logger)
}

// bindPeripherals creates all peripherals, which binds their interrupts.
func (p *Pipeline) bindPeripherals(sys *board.System) peripherals {
	provider := sys.Provider()
	return peripherals{
		spi:    peripheral.NewSPI(p.logger, provider),
		serial: peripheral.NewSerial(p.logger, provider),
		usb:    peripheral.NewUSB(p.logger, provider),
		adc:    peripheral.NewADC(p.logger, provider),
		uart2:  peripheral.NewUART2Console(p.logger, provider).Instance(),
	}
}

func (d peripherals) handled() map[board.Irq]bool {
	return map[board.Irq]bool{
		board.DMA:    d.serial.DMA(),
		board.USART1: d.serial.USART(),
		board.USART2: d.uart2.Received(),
		board.USB:    d.usb.Event(),
		board.ADC1:   d.adc.ADC1(),
		board.ADC2:   d.adc.ADC2(),
		board.SPI1:   d.spi.TransferDone(),
	}
}

// printSummary logs the handled state of every interrupt.
func (p *Pipeline) printSummary(opts options.Program, result *Result) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Simulation finished",
		log.Int("fired", len(result.Report.Steps)))

	for _, id := range board.Irqs() {
		handled := "no"
		if result.Handled[id] {
			handled = "yes"
		}
		p.logger.Info("Interrupt",
			log.Stringer("irq", id),
			log.String("handled", handled))
	}
	for _, id := range result.Report.Unbound() {
		p.logger.Warn("Interrupt fired without binding", log.Stringer("irq", id))
	}
}
