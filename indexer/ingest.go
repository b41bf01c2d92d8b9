package indexer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Ingester folds raw event lines into the store and keeps the counters honest.
// Lines the parser rejects are counted and skipped, not fatal: one corrupt log
// line must not stall the projection behind it.
type Ingester struct {
	store   *Store
	metrics *Metrics
	logger  *slog.Logger
}

// NewIngester wires an ingester over the given store.
func NewIngester(store *Store, metrics *Metrics, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{store: store, metrics: metrics, logger: logger}
}

// IngestLine parses and applies a single event line.
func (i *Ingester) IngestLine(ctx context.Context, line string) error {
	ev, err := ParseEvent(line)
	if err != nil {
		i.metrics.ParseFailures.Inc()
		return fmt.Errorf("parse event: %w", err)
	}
	if err := i.store.Apply(ctx, ev, time.Now().UTC()); err != nil {
		i.metrics.ApplyFailures.Inc()
		return fmt.Errorf("apply event %s: %w", ev.Kind, err)
	}
	i.metrics.EventsIngested.WithLabelValues(string(ev.Kind)).Inc()
	return nil
}

// IngestAll reads newline-separated event lines until EOF, logging and
// skipping bad lines.
func (i *Ingester) IngestAll(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := i.IngestLine(ctx, line); err != nil {
			i.logger.Warn("skipping event line", "err", err)
		}
	}
	return scanner.Err()
}
