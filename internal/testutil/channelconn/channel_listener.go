package channelconn

import (
	"fmt"
	"net"
	"strconv"
	"sync"

	"mtoohey.com/dock/internal/protocol"
)

// Listener hands out in-process connections. Dial blocks until a matching
// Accept.
type Listener struct {
	closeOnce sync.Once
	closed    chan struct{}
	connCh    chan *Conn

	// mu protects dialed.
	mu     sync.Mutex
	dialed int
}

// NewListener creates a listener. Listen is a no-op for it.
func NewListener() *Listener {
	return &Listener{
		closed: make(chan struct{}),
		connCh: make(chan *Conn),
	}
}

func (l *Listener) Listen() error { return nil }

func (l *Listener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	return nil
}

var errListenerClosed = fmt.Errorf("channel listener closed: %w", net.ErrClosed)

func (l *Listener) Accept() (protocol.Conn, error) {
	select {
	case <-l.closed:
		return nil, errListenerClosed
	case c := <-l.connCh:
		return c, nil
	}
}

// Dial returns the client end of a new connection whose server end is
// returned from an ongoing call to Accept.
func (l *Listener) Dial() (protocol.Conn, error) {
	l.mu.Lock()
	l.dialed++
	name := strconv.Itoa(l.dialed)
	l.mu.Unlock()

	client, server := Pair(name)

	select {
	case <-l.closed:
		return nil, errListenerClosed
	case l.connCh <- server:
		return client, nil
	}
}

func (l *Listener) String() string {
	return "channel listener"
}

var _ protocol.Listener = &Listener{}
