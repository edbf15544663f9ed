package tui

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"mtoohey.com/dock/internal/cmd"
	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/layout"
	"mtoohey.com/dock/internal/preset"
	"mtoohey.com/dock/internal/protocol"

	"github.com/gdamore/tcell/v2"
)

type tui struct {
	// constants
	Cmd
	cmd.Globals
	logger *log.Logger
	preset preset.Preset

	// resources
	screen tcell.Screen

	// layout state
	engine  *layout.Engine
	host    *host
	dock    *dock.Dock
	initial dock.Snapshot

	// ui state
	sess    dock.Session
	pointer dock.Pointer
	glyph   dock.Glyph

	layoutR image.Rectangle
	statusR image.Rectangle

	visibleErr error
}

// newTUI builds p into a new dock, applies snap on top of it if it is non-nil,
// and initializes screen. The screen is finalized when loop returns; if this
// function returns an error, the screen was never initialized.
func newTUI(c Cmd, g cmd.Globals, logger *log.Logger, p preset.Preset,
	snap dock.Snapshot, screen tcell.Screen,
) (*tui, error) {
	t := &tui{
		Cmd:     c,
		Globals: g,
		logger:  logger,
		preset:  p,
		screen:  screen,
	}

	t.engine = layout.New(dock.Rect{})
	t.engine.Snap = true
	t.host = &host{Engine: t.engine, labels: map[dock.NodeID]string{}}

	t.dock = dock.New(t.host, logger)
	t.dock.Gap = g.Gap
	if err := p.Build(t.dock); err != nil {
		return nil, err
	}
	t.initial = t.dock.Snapshot()

	if snap != nil {
		// a partially applicable snapshot is still better than none
		if err := t.dock.Restore(snap); err != nil {
			logger.Print(err)
		}
	}

	if err := t.screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)

	t.resize(t.screen.Size())

	return t, nil
}

func (t *tui) close() {
	t.screen.Fini()
}

func (t *tui) resize(w, h int) {
	t.layoutR, t.statusR = vSplitFixedBottom(image.Rect(0, 0, w, h), 1)
	t.engine.SetViewport(dock.RectFromImage(t.layoutR))
	t.frame(t.pointer.Idle())

	t.clear(image.Rect(0, t.layoutR.Max.Y, w, t.statusR.Min.Y))
	for c := image.Pt(0, t.layoutR.Max.Y); c.X < w; c.X++ {
		t.draw(c, '─', styleBorder)
	}
	t.drawStatus()
}

// maxSettleFrames bounds the idle frames run after each input frame.
const maxSettleFrames = 4

// frame runs one dock update for fi, then idle ones until an update stages no
// new layout, so that handles are placed against committed geometry.
func (t *tui) frame(fi *dock.FrameInput) {
	t.dock.Update(&t.sess, fi)
	t.engine.Commit()
	t.glyph = fi.Glyph

	for i := 0; i < maxSettleFrames; i++ {
		writes := t.engine.Writes()

		settle := t.pointer.Idle()
		t.dock.Update(&t.sess, settle)
		t.engine.Commit()
		t.glyph = settle.Glyph

		if t.engine.Writes() == writes {
			break
		}
	}

	t.drawLayout()
}

func (t *tui) drawLayout() {
	t.clear(t.layoutR)

	t.dock.Walk(func(n dock.Node) bool {
		r, ok := t.engine.ResolveRect(n.ID)
		if !ok {
			return false
		}

		switch n.Kind {
		case dock.KindPanel:
			t.drawPanel(r.Image().Intersect(t.layoutR), t.host.labels[n.ID])

		case dock.KindSplit:
			t.drawHandles(n.ID)
		}
		return true
	})
}

func (t *tui) drawPanel(r image.Rectangle, label string) {
	if r.Empty() {
		return
	}

	t.box(r, styleBorder)
	inner := r.Inset(1)
	if inner.Empty() {
		return
	}

	if label == "" {
		t.centeredString(inner, "empty")
		return
	}
	t.drawString(image.Pt(inner.Min.X+1, inner.Min.Y), inner.Max.X-1, label, styleLabel)
}

func (t *tui) drawHandles(split dock.NodeID) {
	o, err := t.dock.Orientation(split)
	if err != nil {
		return
	}

	line := '│'
	if o == dock.Vertical {
		line = '─'
	}

	active, _ := t.sess.Active()
	hovered, _ := t.sess.Hovered()

	handles, _ := t.dock.Handles(split)
	for _, h := range handles {
		rect, ok := t.dock.HandleRect(h)
		if !ok {
			continue
		}

		style := styleHandle
		switch h {
		case active:
			style = styleActive
		case hovered:
			style = styleHover
		}
		t.fill(rect.Image().Intersect(t.layoutR), line, style)
	}
}

// evenAll gives every child of every split the same share.
func (t *tui) evenAll() error {
	var ids []dock.NodeID
	t.dock.Walk(func(n dock.Node) bool {
		if n.Kind == dock.KindSplit {
			ids = append(ids, n.ID)
		}
		return true
	})

	for _, id := range ids {
		if err := t.dock.EvenRatios(id); err != nil {
			return fmt.Errorf("failed to even split %s: %w", id, err)
		}
	}
	return nil
}

// handleEvent applies ev, returning true if the tui should exit.
func (t *tui) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventError:
		return true, fmt.Errorf("got error event: %w", ev)

	case *tcell.EventResize:
		t.resize(ev.Size())

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		t.frame(t.pointer.Frame(dock.Pt(float64(x), float64(y)), true, down))
		t.drawStatus()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true, nil

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil

			case 'e':
				err = t.evenAll()

			case 'r':
				err = t.dock.Restore(t.initial)
			}

			t.frame(t.pointer.Idle())
			t.drawStatus()
		}

	default:
		t.logger.Printf("unhandled event type: %T", ev)
	}

	return false, err
}

func (t *tui) loop(l protocol.Listener) (err error) {
	var wg sync.WaitGroup
	defer wg.Wait()
	// finalizing the screen unblocks the event routine
	defer t.close()

	done := make(chan struct{})
	defer close(done)

	screenEvCh := make(chan tcell.Event)
	screenQuitCh := make(chan struct{})
	defer close(screenQuitCh)
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.screen.ChannelEvents(screenEvCh, screenQuitCh)
	}()

	var requestCh chan request
	var acceptErrCh chan error
	if l != nil {
		requestCh = make(chan request)
		// buffered so that the final accept error doesn't block shutdown
		acceptErrCh = make(chan error, 1)
		t.serve(l, requestCh, acceptErrCh, done, &wg)
	}

	var errTimeoutCancel chan struct{}
	defer func() {
		if errTimeoutCancel != nil {
			close(errTimeoutCancel)
			errTimeoutCancel = nil
		}
	}()
	clearErrCh := make(chan struct{})
	setNewErr := func(err error) {
		t.logger.Print(err)

		// if there's an existing timeout routine running, stop it
		if errTimeoutCancel != nil {
			close(errTimeoutCancel)
		}

		t.visibleErr = err
		t.drawStatus()

		errTimeoutCancel = make(chan struct{})
		cancel := errTimeoutCancel
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case <-time.After(time.Second * 3):
				select {
				case clearErrCh <- struct{}{}:
				case <-cancel:
				}
			case <-cancel:
			}
		}()
	}

	for {
		t.screen.Show()

		select {
		case err := <-acceptErrCh:
			return fmt.Errorf("failed to accept remote connection: %w", err)

		case <-clearErrCh:
			t.visibleErr = nil
			errTimeoutCancel = nil
			t.drawStatus()

		case r := <-requestCh:
			t.handleRequest(r)

		case ev := <-screenEvCh:
			quit, err := t.handleEvent(ev)
			if quit {
				return err
			}
			if err != nil {
				setNewErr(err)
			}
		}
	}
}
