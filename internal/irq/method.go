package irq

import "fmt"

// MethodBinder forwards one interrupt to a method of its holder chosen at bind time.
type MethodBinder[ID Interrupt, H any] struct {
	_ noCopy

	provider *Provider[ID]
	id       ID
	holder   H
	method   func(H)
}

// BindMethod binds the interrupt to the method of the holder, given as a
// method expression like (*SPI).transferComplete. A nil method panics.
func BindMethod[ID Interrupt, H any](p *Provider[ID], id ID, holder H, method func(H)) *MethodBinder[ID, H] {
	if method == nil {
		panic(fmt.Sprintf("irq: nil method for interrupt %d", uint8(id)))
	}

	b := &MethodBinder[ID, H]{
		provider: p,
		id:       id,
		holder:   holder,
		method:   method,
	}
	p.register(id, b.trampoline, Binding[ID]{
		Kind:   Method,
		Holder: holder,
		owner:  b,
	})
	return b
}

func (b *MethodBinder[ID, H]) trampoline() {
	b.method(b.holder)
}

// ID returns the bound interrupt.
func (b *MethodBinder[ID, H]) ID() ID {
	return b.id
}

// Current returns whether the binder still owns its vector slot.
func (b *MethodBinder[ID, H]) Current() bool {
	return b.provider.owns(b.id, b)
}

// MethodPair pairs one interrupt with the method that handles it.
type MethodPair[ID Interrupt, H any] struct {
	id     ID
	method func(H)
}

// On returns the pairing of an interrupt and its handling method for BindMethods.
func On[ID Interrupt, H any](id ID, method func(H)) MethodPair[ID, H] {
	return MethodPair[ID, H]{
		id:     id,
		method: method,
	}
}

// MultiMethodBinder forwards several interrupts to one method each of its holder.
type MultiMethodBinder[ID Interrupt, H any] struct {
	_ noCopy

	provider *Provider[ID]
	holder   H
	pairs    []MethodPair[ID, H]
}

// BindMethods binds every paired interrupt to its method of the holder.
// Listing an interrupt twice or passing a nil method panics.
func BindMethods[ID Interrupt, H any](p *Provider[ID], holder H, pairs ...MethodPair[ID, H]) *MultiMethodBinder[ID, H] {
	ids := make([]ID, 0, len(pairs))
	for _, pair := range pairs {
		if pair.method == nil {
			panic(fmt.Sprintf("irq: nil method for interrupt %d", uint8(pair.id)))
		}
		ids = append(ids, pair.id)
	}
	checkUnique(ids)

	b := &MultiMethodBinder[ID, H]{
		provider: p,
		holder:   holder,
		pairs:    pairs,
	}
	for _, pair := range b.pairs {
		method := pair.method
		p.register(pair.id, func() { method(holder) }, Binding[ID]{
			Kind:   MultiMethod,
			Holder: holder,
			owner:  b,
		})
	}
	return b
}

// IDs returns the bound interrupts in binding order.
func (b *MultiMethodBinder[ID, H]) IDs() []ID {
	ids := make([]ID, 0, len(b.pairs))
	for _, pair := range b.pairs {
		ids = append(ids, pair.id)
	}
	return ids
}

// Current returns whether the binder still owns the slot of the interrupt.
func (b *MultiMethodBinder[ID, H]) Current(id ID) bool {
	return b.provider.owns(id, b)
}
