package irq

import (
	"testing"

	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testIrq uint8

const (
	irqDMA testIrq = iota
	irqUSART1
	irqUSART2
	irqUSB
	irqADC1
	irqADC2
	irqSPI1
	irqCount
)

func newTestProvider(t *testing.T) *Provider[testIrq] {
	t.Helper()
	table := vector.New(0x2001FC00, int(irqCount))
	return New[testIrq](log.NewTestLogger(t), table, nil)
}

func fireAll(p *Provider[testIrq]) {
	for id := range irqCount {
		p.Table().Fire(int(id))
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("each interrupt fires only its handler", func(t *testing.T) {
		for bound := range irqCount {
			p := newTestProvider(t)
			counts := map[testIrq]int{}
			p.RegisterHandler(bound, func() { counts[bound]++ })

			fireAll(p)

			assert.Equal(t, 1, len(counts))
			assert.Equal(t, 1, counts[bound])
		}
	})

	t.Run("last registration wins", func(t *testing.T) {
		p := newTestProvider(t)
		var first, second int
		p.RegisterHandler(irqUSART1, func() { first++ })
		p.RegisterHandler(irqUSART1, func() { second++ })

		p.Table().Fire(int(irqUSART1))
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
	})

	t.Run("binding is recorded", func(t *testing.T) {
		p := newTestProvider(t)
		p.RegisterHandler(irqUSART2, func() {})

		binding, ok := p.Binding(irqUSART2)
		assert.True(t, ok)
		assert.Equal(t, irqUSART2, binding.ID)
		assert.Equal(t, FreeFunction, binding.Kind)
		assert.Nil(t, binding.Holder)

		_, ok = p.Binding(irqUSB)
		assert.False(t, ok)
	})

	t.Run("unbound interrupt fires the table default", func(t *testing.T) {
		var unhandled int
		table := vector.NewWithDefault(0, int(irqCount), func() { unhandled++ })
		p := New[testIrq](log.NewTestLogger(t), table, nil)
		p.RegisterHandler(irqDMA, func() {})

		table.Fire(int(irqSPI1))
		assert.Equal(t, 1, unhandled)
	})

	t.Run("out of range interrupt panics", func(t *testing.T) {
		p := newTestProvider(t)
		defer func() {
			assert.NotNil(t, recover())
		}()
		p.RegisterHandler(irqCount, func() {})
	})
}

func TestProviderSetter(t *testing.T) {
	table := vector.New(0x100, int(irqCount))
	setter := &recordingSetter{}
	p := New[testIrq](log.NewTestLogger(t), table, setter)

	var fired bool
	p.RegisterHandler(irqADC2, func() { fired = true })

	assert.Equal(t, []uint8{uint8(irqADC2)}, setter.slots)
	assert.Equal(t, table, setter.table)
	table.Fire(int(irqADC2))
	assert.True(t, fired)
}

func TestBindings(t *testing.T) {
	p := newTestProvider(t)
	p.RegisterHandler(irqSPI1, func() {})
	p.RegisterHandler(irqDMA, func() {})
	p.RegisterHandler(irqUSB, func() {})

	bindings := p.Bindings()
	assert.Len(t, bindings, 3)
	assert.Equal(t, irqDMA, bindings[0].ID)
	assert.Equal(t, irqUSB, bindings[1].ID)
	assert.Equal(t, irqSPI1, bindings[2].ID)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "free function", FreeFunction.String())
	assert.Equal(t, "multi method", MultiMethod.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

type recordingSetter struct {
	table *vector.Table
	slots []uint8
}

func (s *recordingSetter) Set(table *vector.Table, handler vector.Handler, slot uint8) {
	s.table = table
	s.slots = append(s.slots, slot)
	table.Write(int(slot), handler)
}
