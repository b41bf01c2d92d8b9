// votewatch tails a contract event log and serves the indexed projection
// over HTTP.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vote_dao/indexer"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := indexer.LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	store, err := indexer.OpenStore(cfg.DBPath)
	if err != nil {
		logger.Error("open store", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	metrics := indexer.NewMetrics(prometheus.DefaultRegisterer)
	ingester := indexer.NewIngester(store, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go followEventLog(ctx, logger, ingester, cfg.EventLogPath, cfg.PollInterval)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      indexer.NewServer(store).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("votewatch listening", "addr", cfg.ListenAddr, "log", cfg.EventLogPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server", "err", err)
		os.Exit(1)
	}
}

// followEventLog polls the event log file and ingests whatever bytes appeared
// since the last pass. A missing file is not fatal; the contract side may not
// have produced events yet.
func followEventLog(ctx context.Context, logger *slog.Logger, ing *indexer.Ingester, path string, interval time.Duration) {
	var offset int64
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		offset = ingestFrom(ctx, logger, ing, path, offset)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func ingestFrom(ctx context.Context, logger *slog.Logger, ing *indexer.Ingester, path string, offset int64) int64 {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("open event log", "path", path, "err", err)
		}
		return offset
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		logger.Warn("stat event log", "path", path, "err", err)
		return offset
	}
	if info.Size() < offset {
		// truncated or rotated, start over
		offset = 0
	}
	if info.Size() == offset {
		return offset
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		logger.Warn("seek event log", "path", path, "err", err)
		return offset
	}
	if err := ing.IngestAll(ctx, f); err != nil {
		logger.Warn("ingest event log", "path", path, "err", err)
	}
	return info.Size()
}
