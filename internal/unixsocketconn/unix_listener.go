package unixsocketconn

import (
	"fmt"
	"net"
	"sync"

	"mtoohey.com/dock/internal/protocol"
)

// UnixSocketListener listens for connections on a Unix socket.
type UnixSocketListener struct {
	// SocketPath is the path to the socket that should be listened on.
	SocketPath string

	// mu protects ul.
	mu sync.Mutex
	// ul is the underlying listener.
	ul *net.UnixListener
}

func (usl *UnixSocketListener) Close() error {
	usl.mu.Lock()
	defer usl.mu.Unlock()

	if usl.ul == nil {
		return nil
	}

	err := usl.ul.Close()
	usl.ul = nil
	if err != nil {
		return fmt.Errorf("failed to close unix socket listener: %w", err)
	}

	return nil
}

func (usl *UnixSocketListener) Listen() error {
	usl.mu.Lock()
	defer usl.mu.Unlock()

	if usl.ul != nil {
		return nil
	}

	ul, err := net.ListenUnix("unix", &net.UnixAddr{
		Name: usl.SocketPath,
		Net:  "unix",
	})
	if err != nil {
		return fmt.Errorf("listen unix failed: %w", err)
	}

	// remove the socket file when the listener is closed
	ul.SetUnlinkOnClose(true)
	usl.ul = ul

	return nil
}

func (usl *UnixSocketListener) Accept() (protocol.Conn, error) {
	usl.mu.Lock()
	ul := usl.ul
	usl.mu.Unlock()

	if ul == nil {
		return nil, net.ErrClosed
	}

	uc, err := ul.AcceptUnix()
	if err != nil {
		// AcceptUnix returns an underlying value of type net.ErrClosed when
		// appropriate already, so we don't have to do any mapping
		return nil, fmt.Errorf("accept unix failed: %w", err)
	}

	return newConn(uc), nil
}

func (usl *UnixSocketListener) String() string {
	usl.mu.Lock()
	defer usl.mu.Unlock()

	addrString := "<nil>"
	if usl.ul != nil {
		addrString = usl.ul.Addr().String()
	}

	return fmt.Sprintf("unix socket listener %s", addrString)
}

var _ protocol.Listener = &UnixSocketListener{}
