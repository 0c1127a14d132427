// Package vector provides an emulated interrupt vector table.
// Slot i of a table holds the handler that runs when interrupt i fires.
package vector

// SlotSize is the size in bytes of one vector table entry, a 32-bit function pointer.
const SlotSize = 4

// Handler is the context-free function stored in a vector table slot.
type Handler func()

// Table is a fixed size sequence of handler slots placed at a base address.
type Table struct {
	base           uint32
	defaultHandler Handler
	slots          []Handler
}

// New returns a table of size slots at the given base address.
// Every slot holds a no-op handler until it is written.
func New(base uint32, size int) *Table {
	return NewWithDefault(base, size, func() {})
}

// NewWithDefault returns a table whose slots all hold the given default handler,
// which is what firing an unbound slot invokes.
func NewWithDefault(base uint32, size int, defaultHandler Handler) *Table {
	t := &Table{
		base:           base,
		defaultHandler: defaultHandler,
		slots:          make([]Handler, size),
	}
	for i := range t.slots {
		t.slots[i] = defaultHandler
	}
	return t
}

// Base returns the base address of the table.
func (t *Table) Base() uint32 {
	return t.base
}

// Default returns the handler that unbound slots hold.
func (t *Table) Default() Handler {
	return t.defaultHandler
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.slots)
}

// SlotAddress returns the address of the given slot: base + SlotSize * slot.
func (t *Table) SlotAddress(slot int) uint32 {
	return t.base + uint32(SlotSize*slot)
}

// Write stores the handler in the slot. A nil handler restores the default handler.
// The slot is not bounds checked beyond the runtime slice check.
func (t *Table) Write(slot int, handler Handler) {
	if handler == nil {
		handler = t.defaultHandler
	}
	t.slots[slot] = handler
}

// Read returns the handler currently stored in the slot.
func (t *Table) Read(slot int) Handler {
	return t.slots[slot]
}

// Fire invokes the handler stored in the slot, standing in for the interrupt controller.
func (t *Table) Fire(slot int) {
	t.slots[slot]()
}

// CopyTo copies all slots into dst, up to the length of the shorter table.
func (t *Table) CopyTo(dst *Table) int {
	return copy(dst.slots, t.slots)
}
