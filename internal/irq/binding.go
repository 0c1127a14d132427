package irq

import "fmt"

// Kind describes how an interrupt is bound.
type Kind uint8

// Binding kinds.
const (
	FreeFunction Kind = iota
	Fixed
	MultiFixed
	Method
	MultiMethod
)

var kindNames = map[Kind]string{
	FreeFunction: "free function",
	Fixed:        "fixed",
	MultiFixed:   "multi fixed",
	Method:       "method",
	MultiMethod:  "multi method",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return name
}

// Binding is the registry entry of one interrupt.
type Binding[ID Interrupt] struct {
	ID     ID
	Kind   Kind
	Holder any // nil for free functions

	owner any // binder that created the binding
	bound bool
}

// noCopy makes go vet report copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
