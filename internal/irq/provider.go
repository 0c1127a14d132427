// Package irq binds interrupt handlers to the slots of a vector table.
//
// A Provider combines a vector table, the interrupt enumeration and the
// setter used to write slots. Handlers are registered either as free
// functions or through binders that forward an interrupt to a holder value:
//
//	BindFixed          one interrupt to holder.HandleIRQ()
//	BindFixedMulti     several interrupts to holder.HandleIRQ(id)
//	BindMethod         one interrupt to any method of the holder
//	BindMethods        several interrupts, one method each
//
// Registration is expected to happen during startup before interrupts fire.
// A later registration for the same interrupt replaces the earlier one.
package irq

import (
	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/log"
)

// Interrupt is the constraint for interrupt enumerations. The value of an
// interrupt is its slot index in the vector table.
type Interrupt interface {
	~uint8
}

// Provider registers interrupt handlers in a vector table and keeps track
// of the live binding of every interrupt.
type Provider[ID Interrupt] struct {
	logger   *log.Logger
	table    *vector.Table
	setter   vector.Setter
	bindings []Binding[ID]
}

// New returns a provider writing to the given table through the setter.
// A nil setter writes the slots directly.
func New[ID Interrupt](logger *log.Logger, table *vector.Table, setter vector.Setter) *Provider[ID] {
	if setter == nil {
		setter = vector.DirectSetter{}
	}
	return &Provider[ID]{
		logger:   logger,
		table:    table,
		setter:   setter,
		bindings: make([]Binding[ID], table.Len()),
	}
}

// Table returns the vector table that the provider writes to.
func (p *Provider[ID]) Table() *vector.Table {
	return p.table
}

// RegisterHandler writes the free function into the vector slot of the interrupt.
func (p *Provider[ID]) RegisterHandler(id ID, fn vector.Handler) {
	p.register(id, fn, Binding[ID]{Kind: FreeFunction})
}

// register writes the trampoline into the slot of the interrupt and records
// the binding, replacing any previous one.
func (p *Provider[ID]) register(id ID, trampoline vector.Handler, binding Binding[ID]) {
	binding.ID = id
	binding.bound = true
	p.bindings[id] = binding

	p.logger.Debug("Registering interrupt handler",
		log.Uint8("irq", uint8(id)),
		log.Stringer("kind", binding.Kind),
		log.Hex("address", p.table.SlotAddress(int(id))))

	p.setter.Set(p.table, trampoline, uint8(id))
}

// Binding returns the live binding of the interrupt.
func (p *Provider[ID]) Binding(id ID) (Binding[ID], bool) {
	binding := p.bindings[id]
	return binding, binding.bound
}

// Bindings returns all live bindings ordered by interrupt.
func (p *Provider[ID]) Bindings() []Binding[ID] {
	var bindings []Binding[ID]
	for _, binding := range p.bindings {
		if binding.bound {
			bindings = append(bindings, binding)
		}
	}
	return bindings
}

// owns returns whether the live binding of the interrupt was created by owner.
func (p *Provider[ID]) owns(id ID, owner any) bool {
	binding := p.bindings[id]
	return binding.bound && binding.owner == owner
}
