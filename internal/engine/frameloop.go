package engine

import (
	"context"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// FrameCallback runs once on the next frame. A returned error stops the loop.
type FrameCallback func() error

// FrameHandle identifies a requested callback so it can be cancelled.
type FrameHandle uint64

// Display is the window side of the loop.
type Display interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// FrameObserver is told when each frame starts and ends.
type FrameObserver interface {
	Begin()
	End()
}

type pendingFrame struct {
	handle FrameHandle
	cb     FrameCallback
}

// FrameLoop is a display-refresh scheduler: callbacks are single shot and run
// in request order on the next frame. With vsync on, a frame is one refresh.
type FrameLoop struct {
	display  Display
	observer FrameObserver

	next      FrameHandle
	pending   []pendingFrame
	running   []pendingFrame // not yet run in the current frame
	cancelled map[FrameHandle]bool
}

func NewFrameLoop(display Display) *FrameLoop {
	return &FrameLoop{
		display:   display,
		cancelled: make(map[FrameHandle]bool),
	}
}

func (l *FrameLoop) SetObserver(o FrameObserver) {
	l.observer = o
}

// Request schedules cb for the next frame.
func (l *FrameLoop) Request(cb FrameCallback) FrameHandle {
	l.next++
	l.pending = append(l.pending, pendingFrame{handle: l.next, cb: cb})
	return l.next
}

// Cancel unregisters a pending callback. It reports false if the callback
// already ran or was never requested.
func (l *FrameLoop) Cancel(h FrameHandle) bool {
	if l.cancelled[h] {
		return false
	}
	for _, queue := range [][]pendingFrame{l.running, l.pending} {
		for _, p := range queue {
			if p.handle == h {
				l.cancelled[h] = true
				return true
			}
		}
	}
	return false
}

// Repeat requests fn on every frame until the returned cancel func is called.
func (l *FrameLoop) Repeat(fn FrameCallback) (cancel func()) {
	var handle FrameHandle
	stopped := false
	var frame FrameCallback
	frame = func() error {
		if err := fn(); err != nil {
			return err
		}
		if !stopped {
			handle = l.Request(frame)
		}
		return nil
	}
	handle = l.Request(frame)
	return func() {
		stopped = true
		l.Cancel(handle)
	}
}

// Pending is the number of callbacks waiting for the next frame.
func (l *FrameLoop) Pending() int {
	n := 0
	for _, p := range l.pending {
		if !l.cancelled[p.handle] {
			n++
		}
	}
	return n
}

// RunFrame runs the callbacks due this frame. Callbacks requested while it
// runs wait for the following frame.
func (l *FrameLoop) RunFrame() error {
	due := l.pending
	l.pending = nil

	if l.observer != nil {
		l.observer.Begin()
		defer l.observer.End()
	}

	defer func() { l.running = nil }()

	for i, p := range due {
		l.running = due[i+1:]
		if l.cancelled[p.handle] {
			delete(l.cancelled, p.handle)
			continue
		}
		if err := p.cb(); err != nil {
			for _, rest := range l.running {
				delete(l.cancelled, rest.handle)
			}
			return err
		}
	}
	return nil
}

// Run drives frames until the window closes, ctx is done or a callback fails.
func (l *FrameLoop) Run(ctx context.Context) error {
	for !l.display.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := l.RunFrame(); err != nil {
			return err
		}
		l.display.SwapBuffers()
		l.display.PollEvents()
	}
	return nil
}

type windowDisplay struct {
	*glfw.Window
}

func (windowDisplay) PollEvents() {
	glfw.PollEvents()
}
