package tui

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/protocol"
)

// request is a message received from a remote client, to be handled by the
// loop routine. Exactly one reply is sent on reply, which has room for it.
type request struct {
	from  string
	m     protocol.Message
	reply chan<- protocol.Message
}

// serve starts accepting connections from l. Every connection first gets a
// State, then a reply to each message it sends. Messages are forwarded to
// requestCh one at a time, and replies are written by the connection's own
// routine so that a slow client never blocks the loop. Everything is closed
// once done is closed.
func (t *tui) serve(l protocol.Listener, requestCh chan<- request,
	acceptErrCh chan<- error, done <-chan struct{}, wg *sync.WaitGroup,
) {
	// connsMu protects conns.
	var connsMu sync.Mutex
	conns := map[protocol.Conn]struct{}{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-done

		if err := l.Close(); err != nil {
			t.logger.Printf("failed to close %s: %s", l, err)
		}

		connsMu.Lock()
		defer connsMu.Unlock()
		for c := range conns {
			delete(conns, c)
			if err := c.Close(); err != nil {
				t.logger.Printf("failed to close %s: %s", c, err)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			c, err := l.Accept()
			if err != nil {
				if !errors.Is(err, net.ErrClosed) {
					acceptErrCh <- err
				}
				return
			}

			connsMu.Lock()
			select {
			case <-done:
				connsMu.Unlock()
				_ = c.Close()
				return
			default:
			}
			conns[c] = struct{}{}
			connsMu.Unlock()

			t.logger.Printf("accepted %s", c)

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() {
					connsMu.Lock()
					defer connsMu.Unlock()
					if _, ok := conns[c]; ok {
						delete(conns, c)
						_ = c.Close()
					}
				}()

				t.converse(c, requestCh, done)
			}()
		}
	}()
}

// converse relays messages from c to requestCh and their replies back to c
// until either c or done is closed.
func (t *tui) converse(c protocol.Conn, requestCh chan<- request, done <-chan struct{}) {
	replyCh := make(chan protocol.Message, 1)

	m := protocol.Message(protocol.GetState{})
	for {
		select {
		case requestCh <- request{from: c.String(), m: m, reply: replyCh}:
		case <-done:
			return
		}

		var reply protocol.Message
		select {
		case reply = <-replyCh:
		case <-done:
			return
		}

		if err := c.Send(reply); err != nil {
			if !errors.Is(err, net.ErrClosed) {
				t.logger.Printf("failed to reply to %s: %s", c, err)
			}
			return
		}

		var err error
		m, err = c.Receive()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				t.logger.Printf("failed to receive from %s: %s", c, err)
			}
			return
		}
	}
}

// state describes the current layout.
func (t *tui) state() protocol.State {
	s := protocol.State{
		Preset:  t.preset.Name,
		Version: protocol.Version,
	}

	t.dock.Walk(func(n dock.Node) bool {
		if n.Kind != dock.KindSplit {
			return true
		}

		o, _ := t.dock.Orientation(n.ID)
		ratios, _ := t.dock.Ratios(n.ID)
		s.Splits = append(s.Splits, protocol.Split{
			Path:        n.Path,
			Orientation: o.String(),
			Ratios:      ratios,
		})
		return true
	})

	return s
}

// apply performs the change requested by m.
func (t *tui) apply(m protocol.Message) error {
	switch m := m.(type) {
	case protocol.GetState:
		return nil

	case protocol.SetRatios:
		id, err := t.dock.Lookup(m.Path)
		if err != nil {
			return err
		}
		return t.dock.SetRatios(id, m.Ratios)

	case protocol.EvenRatios:
		id, err := t.dock.Lookup(string(m))
		if err != nil {
			return err
		}
		return t.dock.EvenRatios(id)

	default:
		return fmt.Errorf("unhandled message type: %T", m)
	}
}

// handleRequest applies r and replies with either the resulting state or the
// reason it could not be applied.
func (t *tui) handleRequest(r request) {
	if err := t.apply(r.m); err != nil {
		t.logger.Printf("request from %s failed: %s", r.from, err)
		r.reply <- protocol.Error(err.Error())
		return
	}

	if _, ok := r.m.(protocol.GetState); !ok {
		t.frame(t.pointer.Idle())
		t.drawStatus()
	}
	r.reply <- t.state()
}
