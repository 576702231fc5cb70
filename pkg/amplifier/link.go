package amplifier

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/chazu/intcode/pkg/intcode"
)

// ErrLinkClosed is returned by Send and Receive once the link is closed.
var ErrLinkClosed = errors.New("amplifier: link closed")

// Link is a rendezvous hand-off between two amplifiers. It has no buffer: a
// Send blocks until a Receive takes the value and vice versa.
//
// Closing a link releases both ends. The value channel itself is never
// closed, so a late Send cannot panic.
type Link struct {
	ch     chan int64
	done   chan struct{}
	closed atomic.Bool
	mu     sync.Mutex // protects close operation
}

// NewLink creates an open rendezvous link.
func NewLink() *Link {
	return &Link{
		ch:   make(chan int64),
		done: make(chan struct{}),
	}
}

// Send hands v to the receiving end. It fails with ErrLinkClosed if the link
// is or becomes closed first, or with the context's error if ctx is done.
func (l *Link) Send(ctx context.Context, v int64) error {
	if l.closed.Load() {
		return ErrLinkClosed
	}
	select {
	case l.ch <- v:
		return nil
	case <-l.done:
		return ErrLinkClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive takes the next value from the sending end. It fails with
// ErrLinkClosed if the link is or becomes closed first, or with the
// context's error if ctx is done.
func (l *Link) Receive(ctx context.Context) (int64, error) {
	if l.closed.Load() {
		return 0, ErrLinkClosed
	}
	select {
	case v := <-l.ch:
		return v, nil
	case <-l.done:
		return 0, ErrLinkClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close closes the link. Closing an already closed link is a no-op.
func (l *Link) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return
	}
	l.closed.Store(true)
	close(l.done)
}

// Closed reports whether the link has been closed.
func (l *Link) Closed() bool {
	return l.closed.Load()
}

// Input adapts the receiving end of the link to an intcode.Input.
func (l *Link) Input(ctx context.Context) intcode.Input {
	return func() (int64, error) {
		return l.Receive(ctx)
	}
}

// Output adapts the sending end of the link to an intcode.Output.
func (l *Link) Output(ctx context.Context) intcode.Output {
	return func(v int64) error {
		return l.Send(ctx, v)
	}
}
