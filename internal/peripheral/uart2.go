package peripheral

import (
	"github.com/retroenv/irqbind/internal/board"
	"github.com/retroenv/irqbind/internal/singleton"
	"github.com/retroenv/retrogolib/log"
)

// UART2 is the singleton peripheral that handles USART2 with a free function.
// Its only implementation is created by UART2Console.
type UART2 interface {
	Received() bool
}

var _ UART2 = (*uart2)(nil)

// uart2 is unexported so that the singleton constructor is the only way to
// create it outside this package.
type uart2 struct {
	singleton.Guard

	logger   *log.Logger
	received bool
}

// UART2Console lazily constructs the UART2 peripheral. The USART2 handler is
// registered when the instance is first requested.
type UART2Console struct {
	guard *singleton.Singleton[uart2]
}

// NewUART2Console returns the console of the UART2 peripheral.
func NewUART2Console(logger *log.Logger, provider *board.Provider) *UART2Console {
	c := &UART2Console{}
	c.guard = singleton.New(func() *uart2 {
		provider.RegisterHandler(board.USART2, c.usart2Received)
		return &uart2{logger: logger}
	})
	return c
}

// Instance returns the UART2 peripheral, constructing it on the first call.
func (c *UART2Console) Instance() UART2 {
	return c.guard.Instance()
}

// usart2Received has no receiver state besides the console and reaches the
// peripheral through the published instance.
func (c *UART2Console) usart2Received() {
	u := c.guard.Published()
	if u == nil {
		return // fired before construction finished
	}
	u.receive()
}

func (u *uart2) receive() {
	u = singleton.Must(u)
	u.logger.Info("USART2 interrupt")
	u.received = true
}

// Received returns whether the USART2 interrupt was handled.
func (u *uart2) Received() bool {
	return singleton.Must(u).received
}
