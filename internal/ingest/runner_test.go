package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/discarr/discarr/internal/resolve"
)

// captureResolver records the barcodes it sees, in order.
type captureResolver struct {
	mu    sync.Mutex
	seen  []string
	errOn string
}

func (c *captureResolver) ResolveAutonomous(_ context.Context, barcode string) (*resolve.Outcome, error) {
	c.mu.Lock()
	c.seen = append(c.seen, barcode)
	c.mu.Unlock()
	if barcode == c.errOn {
		return nil, errors.New("store unavailable")
	}
	return &resolve.Outcome{Status: resolve.StatusNotFound, Reason: resolve.ErrNoCandidate}, nil
}

func (c *captureResolver) SweepPending() {}

func (c *captureResolver) barcodes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.seen...)
}

func TestRunner_ResolvesInArrivalOrder(t *testing.T) {
	resolver := &captureResolver{}
	device := strings.NewReader("111\n222\n333\n")
	runner := NewRunner(device, '\n', resolver, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := resolver.barcodes()
	want := []string{"111", "222", "333"}
	if len(got) != len(want) {
		t.Fatalf("resolved %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("resolved[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunner_ResolutionErrorDoesNotStopConsumer(t *testing.T) {
	resolver := &captureResolver{errOn: "222"}
	device := strings.NewReader("111\n222\n333\n")
	runner := NewRunner(device, '\n', resolver, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := resolver.barcodes(); len(got) != 3 {
		t.Errorf("resolved %v, want all three barcodes", got)
	}
}

func TestRunner_StopsOnContextCancel(t *testing.T) {
	resolver := &captureResolver{}
	// A pipe-like blocking reader: no terminator ever arrives.
	device := blockingReader{unblock: make(chan struct{})}
	runner := NewRunner(device, '\n', resolver, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	cancel()
	close(device.unblock)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

// blockingReader blocks until unblocked, then reports end of stream.
type blockingReader struct {
	unblock chan struct{}
}

func (b blockingReader) Read([]byte) (int, error) {
	<-b.unblock
	return 0, io.EOF
}
