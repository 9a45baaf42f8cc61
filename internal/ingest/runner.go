package ingest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/discarr/discarr/internal/resolve"
)

const defaultSweepInterval = 5 * time.Minute

// Resolver is the autonomous resolution surface the consumer drives.
type Resolver interface {
	ResolveAutonomous(ctx context.Context, barcode string) (*resolve.Outcome, error)
	SweepPending()
}

// Runner wires a device producer, the FIFO queue, and the single consumer.
// The consumer processes barcodes strictly in arrival order; no two
// device-originated resolutions ever run concurrently.
type Runner struct {
	device     io.Reader
	terminator byte
	resolver   Resolver
	logger     *slog.Logger
}

// NewRunner creates a runner for one device stream.
func NewRunner(device io.Reader, terminator byte, resolver Resolver, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		device:     device,
		terminator: terminator,
		resolver:   resolver,
		logger:     logger.With("component", "ingest"),
	}
}

// Run starts the producer and consumer and blocks until the device stream
// ends, the context is canceled, or a persistence failure occurs.
func (r *Runner) Run(ctx context.Context) error {
	queue := NewQueue()
	reader := NewReader(r.device, r.terminator, r.logger)

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer queue.Close()
		return reader.Run(queue)
	})

	// The consumer finishing means the device stream ended and the queue is
	// drained; release the sweeper so Wait can return.
	g.Go(func() error {
		defer cancel()
		return r.consume(ctx, queue)
	})

	// Bound the lifetime of resolutions stuck awaiting confirmation.
	g.Go(func() error {
		ticker := time.NewTicker(defaultSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				r.resolver.SweepPending()
			}
		}
	})

	return g.Wait()
}

// consume drains the queue one token at a time.
func (r *Runner) consume(ctx context.Context, queue *Queue) error {
	for {
		token, ok := queue.Pop()
		if !ok {
			if queue.Closed() {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-queue.Wait():
			}
			continue
		}

		outcome, err := r.resolver.ResolveAutonomous(ctx, token)
		if err != nil {
			// Persistence failures are fatal for this barcode only.
			r.logger.Error("resolution failed", "barcode", token, "error", err)
			continue
		}

		switch outcome.Status {
		case resolve.StatusNotFound:
			r.logger.Info("barcode not resolved", "barcode", token, "reason", outcome.Reason)
		default:
			r.logger.Info("barcode resolved",
				"barcode", token, "status", outcome.Status, "title", outcome.Item.Title)
		}
	}
}
