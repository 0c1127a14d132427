// Package singleton provides a lazily constructed single instance holder.
//
// The guarded type embeds Guard and is unexported, so the constructor passed
// to New is the only way other packages obtain a value. Inside its own package
// a value built by hand is not owned, and Must rejects it wherever the type
// relies on being the single instance. The instance is published so that
// handlers without a receiver, like vector table trampolines, can reach it:
//
//	type uart struct {
//		singleton.Guard
//		received bool
//	}
//
//	var console = singleton.New(func() *uart { return &uart{} })
//
//	func uartTrampoline() {
//		if u := console.Published(); u != nil {
//			u.received = true
//		}
//	}
package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Guard marks a type as guarded by a Singleton. It must be embedded.
type Guard struct {
	owner any
}

func (g *Guard) guard() *Guard {
	return g
}

type guarded interface {
	guard() *Guard
}

// Owned returns whether v was created by a Singleton.
func Owned[T any](v *T) bool {
	if v == nil {
		return false
	}
	g, ok := any(v).(guarded)
	return ok && g.guard().owner != nil
}

// Must returns v and panics if it was not created by a Singleton.
func Must[T any](v *T) *T {
	if !Owned(v) {
		panic(fmt.Sprintf("singleton: %T value was not created by its singleton", v))
	}
	return v
}

// Singleton constructs its value on first access and returns the same
// pointer for the lifetime of the process.
type Singleton[T any] struct {
	_ noCopy

	construct func() *T
	once      sync.Once
	instance  atomic.Pointer[T]
}

// New returns a singleton that builds its instance with construct.
func New[T any](construct func() *T) *Singleton[T] {
	if construct == nil {
		panic("singleton: nil constructor")
	}
	return &Singleton[T]{
		construct: construct,
	}
}

// Instance returns the instance, constructing and publishing it on the first call.
// It panics if the guarded type does not embed Guard or if the constructor
// returns nil or a value already owned by another singleton. A failed
// construction is terminal: every later call panics as well.
func (s *Singleton[T]) Instance() *T {
	s.once.Do(func() {
		v := s.construct()
		if v == nil {
			panic(fmt.Sprintf("singleton: constructor of %T returned nil", v))
		}
		g, ok := any(v).(guarded)
		if !ok {
			panic(fmt.Sprintf("singleton: %T does not embed singleton.Guard", v))
		}
		guard := g.guard()
		if guard.owner != nil {
			panic(fmt.Sprintf("singleton: %T value is already owned", v))
		}
		guard.owner = s
		s.instance.Store(v)
	})

	v := s.instance.Load()
	if v == nil {
		panic(fmt.Sprintf("singleton: construction of %T failed", v))
	}
	return v
}

// Published returns the published instance, or nil if Instance was not called yet.
func (s *Singleton[T]) Published() *T {
	return s.instance.Load()
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
