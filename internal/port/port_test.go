package port

import (
	"testing"

	"github.com/retroenv/irqbind/internal/vector"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestMirrorSetter(t *testing.T) {
	configured := vector.New(0x0, 4)
	target := vector.New(0x1000, 4)
	setter := MirrorSetter{Target: target}

	var configuredFired, targetFired bool
	configured.Write(2, func() { configuredFired = true })
	setter.Set(configured, func() { targetFired = true }, 2)

	target.Fire(2)
	configured.Fire(2)
	assert.True(t, targetFired)
	assert.True(t, configuredFired)
}

func TestRelocate(t *testing.T) {
	rom := vector.New(0x08000000, 8)
	var fired []int
	rom.Write(3, func() { fired = append(fired, 3) })
	rom.Write(7, func() { fired = append(fired, 7) })

	ram := Relocate(log.NewTestLogger(t), rom, 0x2001FC00)

	assert.Equal(t, uint32(0x2001FC00), ram.Base())
	assert.Equal(t, 8, ram.Len())

	ram.Fire(3)
	ram.Fire(7)
	ram.Fire(0)
	assert.Equal(t, []int{3, 7}, fired)

	// writes to the RAM table leave the ROM table untouched
	ram.Write(3, func() { fired = append(fired, 30) })
	rom.Fire(3)
	assert.Equal(t, []int{3, 7, 3}, fired)
}

func TestRelocateKeepsDefaultHandler(t *testing.T) {
	var unhandled int
	rom := vector.NewWithDefault(0x08000000, 4, func() { unhandled++ })

	ram := Relocate(log.NewTestLogger(t), rom, 0x2001FC00)
	ram.Write(1, func() {})
	ram.Write(1, nil)

	ram.Fire(1)
	assert.Equal(t, 1, unhandled)
}
