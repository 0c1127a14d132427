// Package simulator fires vector table slots in place of an interrupt controller.
package simulator

import (
	"context"
	"fmt"

	"github.com/retroenv/irqbind/internal/irq"
	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// BindingLookup returns the live binding of an interrupt.
type BindingLookup[ID irq.Interrupt] interface {
	Binding(id ID) (irq.Binding[ID], bool)
}

// Step is one fired interrupt.
type Step[ID irq.Interrupt] struct {
	ID    ID
	Bound bool
	Kind  irq.Kind // only set if Bound
}

// Report lists the fired interrupts in firing order.
type Report[ID irq.Interrupt] struct {
	Steps []Step[ID]
}

// Unbound returns the distinct interrupts that fired without a binding, in
// order of their first firing.
func (r Report[ID]) Unbound() []ID {
	seen := set.New[ID]()
	var ids []ID
	for _, step := range r.Steps {
		if step.Bound || seen.Contains(step.ID) {
			continue
		}
		seen.Add(step.ID)
		ids = append(ids, step.ID)
	}
	return ids
}

// Driver invokes vector table slots synchronously.
type Driver[ID irq.Interrupt] struct {
	logger   *log.Logger
	vectors  *vector.Table
	bindings BindingLookup[ID]
}

// New returns a driver firing the slots of the given table. The binding
// lookup is used for reporting only and can be nil.
func New[ID irq.Interrupt](logger *log.Logger, vectors *vector.Table, bindings BindingLookup[ID]) *Driver[ID] {
	return &Driver[ID]{
		logger:   logger,
		vectors:  vectors,
		bindings: bindings,
	}
}

// Fire invokes the slot of the interrupt and returns the fired step.
func (d *Driver[ID]) Fire(id ID) Step[ID] {
	step := Step[ID]{ID: id}
	if d.bindings != nil {
		binding, ok := d.bindings.Binding(id)
		step.Bound = ok
		step.Kind = binding.Kind
	}

	d.logger.Debug("Firing interrupt",
		log.Uint8("irq", uint8(id)),
		log.Hex("address", d.vectors.SlotAddress(int(id))))

	d.vectors.Fire(int(id))
	return step
}

// Run fires the interrupts in order. It stops before the next interrupt when
// the context is cancelled and returns the steps fired so far.
func (d *Driver[ID]) Run(ctx context.Context, ids []ID) (Report[ID], error) {
	var report Report[ID]
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("firing interrupt %d of %d: %w", i+1, len(ids), err)
		}
		report.Steps = append(report.Steps, d.Fire(id))
	}
	return report, nil
}
