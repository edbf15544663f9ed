// Package channelconn carries protocol messages between goroutines of the
// same process, without encoding them.
package channelconn

import (
	"fmt"
	"net"
	"sync"

	"mtoohey.com/dock/internal/protocol"
)

// pipe is shared by both ends of a connection. Closing either end closes
// both.
type pipe struct {
	once   sync.Once
	closed chan struct{}
}

func (p *pipe) close() {
	p.once.Do(func() { close(p.closed) })
}

// Conn is one end of an in-process connection. Receive, Send, and Close may be
// called from multiple goroutines.
type Conn struct {
	name    string
	pipe    *pipe
	receive <-chan protocol.Message
	send    chan<- protocol.Message
}

// Pair returns the two ends of a new connection.
func Pair(name string) (*Conn, *Conn) {
	p := &pipe{closed: make(chan struct{})}
	aToB := make(chan protocol.Message)
	bToA := make(chan protocol.Message)

	return &Conn{name: name + " (a)", pipe: p, receive: bToA, send: aToB},
		&Conn{name: name + " (b)", pipe: p, receive: aToB, send: bToA}
}

var errConnClosed = fmt.Errorf("channel conn closed: %w", net.ErrClosed)

func (c *Conn) Close() error {
	c.pipe.close()
	return nil
}

func (c *Conn) Receive() (protocol.Message, error) {
	// prefer reporting closure over a message racing with it
	select {
	case <-c.pipe.closed:
		return nil, errConnClosed
	default:
	}

	select {
	case <-c.pipe.closed:
		return nil, errConnClosed
	case m := <-c.receive:
		return m, nil
	}
}

func (c *Conn) Send(m protocol.Message) error {
	select {
	case <-c.pipe.closed:
		return errConnClosed
	default:
	}

	select {
	case <-c.pipe.closed:
		return errConnClosed
	case c.send <- m:
		return nil
	}
}

func (c *Conn) String() string {
	return fmt.Sprintf("channel conn %s", c.name)
}

var _ protocol.Conn = &Conn{}
