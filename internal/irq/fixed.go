package irq

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// Handler is implemented by holders bound to a single interrupt by BindFixed.
type Handler interface {
	HandleIRQ()
}

// MultiHandler is implemented by holders bound to several interrupts by
// BindFixedMulti. The interrupt that fired is passed as argument.
type MultiHandler[ID Interrupt] interface {
	HandleIRQ(id ID)
}

// FixedBinder forwards one interrupt to the HandleIRQ method of its holder.
type FixedBinder[ID Interrupt] struct {
	_ noCopy

	provider *Provider[ID]
	id       ID
	holder   Handler
}

// BindFixed binds the interrupt to holder.HandleIRQ.
func (p *Provider[ID]) BindFixed(id ID, holder Handler) *FixedBinder[ID] {
	b := &FixedBinder[ID]{
		provider: p,
		id:       id,
		holder:   holder,
	}
	p.register(id, b.trampoline, Binding[ID]{
		Kind:   Fixed,
		Holder: holder,
		owner:  b,
	})
	return b
}

func (b *FixedBinder[ID]) trampoline() {
	b.holder.HandleIRQ()
}

// ID returns the bound interrupt.
func (b *FixedBinder[ID]) ID() ID {
	return b.id
}

// Current returns whether the binder still owns its vector slot.
// It reports false after another registration replaced it.
func (b *FixedBinder[ID]) Current() bool {
	return b.provider.owns(b.id, b)
}

// fixedEntry is one interrupt of a multi fixed binder.
type fixedEntry[ID Interrupt] struct {
	id         ID
	trampoline func()
}

// MultiFixedBinder forwards several interrupts to the HandleIRQ(id) method of its holder.
type MultiFixedBinder[ID Interrupt] struct {
	_ noCopy

	provider *Provider[ID]
	holder   MultiHandler[ID]
	entries  []fixedEntry[ID]
}

// BindFixedMulti binds every interrupt to holder.HandleIRQ(id).
// Listing an interrupt twice panics.
func (p *Provider[ID]) BindFixedMulti(holder MultiHandler[ID], ids ...ID) *MultiFixedBinder[ID] {
	checkUnique(ids)

	b := &MultiFixedBinder[ID]{
		provider: p,
		holder:   holder,
		entries:  make([]fixedEntry[ID], 0, len(ids)),
	}
	for _, id := range ids {
		b.entries = append(b.entries, fixedEntry[ID]{
			id:         id,
			trampoline: func() { holder.HandleIRQ(id) },
		})
	}

	for _, entry := range b.entries {
		p.register(entry.id, entry.trampoline, Binding[ID]{
			Kind:   MultiFixed,
			Holder: holder,
			owner:  b,
		})
	}
	return b
}

// IDs returns the bound interrupts in binding order.
func (b *MultiFixedBinder[ID]) IDs() []ID {
	ids := make([]ID, 0, len(b.entries))
	for _, entry := range b.entries {
		ids = append(ids, entry.id)
	}
	return ids
}

// Current returns whether the binder still owns the slot of the interrupt.
func (b *MultiFixedBinder[ID]) Current(id ID) bool {
	return b.provider.owns(id, b)
}

func checkUnique[ID Interrupt](ids []ID) {
	seen := set.New[ID]()
	for _, id := range ids {
		if seen.Contains(id) {
			panic(fmt.Sprintf("irq: interrupt %d bound twice by the same binder", uint8(id)))
		}
		seen.Add(id)
	}
}
