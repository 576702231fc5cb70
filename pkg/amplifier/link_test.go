package amplifier

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLinkSendReceive(t *testing.T) {
	l := NewLink()
	ctx := context.Background()

	go func() {
		for i := int64(1); i <= 3; i++ {
			if err := l.Send(ctx, i*10); err != nil {
				t.Errorf("Send failed: %v", err)
				return
			}
		}
	}()

	for i := int64(1); i <= 3; i++ {
		v, err := l.Receive(ctx)
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if v != i*10 {
			t.Errorf("Receive = %d, want %d", v, i*10)
		}
	}
}

func TestLinkIsUnbuffered(t *testing.T) {
	l := NewLink()
	sent := make(chan struct{})

	go func() {
		l.Send(context.Background(), 1)
		close(sent)
	}()

	select {
	case <-sent:
		t.Fatal("Send completed without a receiver")
	case <-time.After(20 * time.Millisecond):
	}

	if v, err := l.Receive(context.Background()); err != nil || v != 1 {
		t.Fatalf("Receive = %d, %v; want 1", v, err)
	}
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("Send did not complete after Receive")
	}
}

func TestLinkCloseReleasesBlocked(t *testing.T) {
	l := NewLink()
	errc := make(chan error, 1)

	go func() {
		_, err := l.Receive(context.Background())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	l.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrLinkClosed) {
			t.Errorf("err = %v, want ErrLinkClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Receive still blocked after Close")
	}
}

func TestLinkClosed(t *testing.T) {
	l := NewLink()
	l.Close()
	l.Close() // second close is a no-op

	if !l.Closed() {
		t.Error("Closed() = false after Close")
	}
	if err := l.Send(context.Background(), 1); !errors.Is(err, ErrLinkClosed) {
		t.Errorf("Send err = %v, want ErrLinkClosed", err)
	}
	if _, err := l.Receive(context.Background()); !errors.Is(err, ErrLinkClosed) {
		t.Errorf("Receive err = %v, want ErrLinkClosed", err)
	}
}

func TestLinkContextCancel(t *testing.T) {
	l := NewLink()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)

	go func() {
		errc <- l.Send(ctx, 5)
	}()

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Send still blocked after cancel")
	}
}

func TestLinkAdapters(t *testing.T) {
	l := NewLink()
	ctx := context.Background()
	in, out := l.Input(ctx), l.Output(ctx)

	go out(77)
	v, err := in()
	if err != nil || v != 77 {
		t.Errorf("in() = %d, %v; want 77", v, err)
	}
}
