package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SweeperConfig configures a Sweeper.
type SweeperConfig struct {
	// IdleTTL is how long a session may go unused before it is evicted.
	IdleTTL time.Duration

	// Interval is how often the store is swept.
	// If zero, defaults to one minute
	Interval time.Duration
}

// Sweeper periodically evicts idle sessions from a SessionStore.
type Sweeper struct {
	store  *SessionStore
	config SweeperConfig
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper creates a Sweeper. Call Start to begin sweeping.
func NewSweeper(store *SessionStore, config SweeperConfig, logger *slog.Logger) *Sweeper {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Sweeper{
		store:  store,
		config: config,
		logger: logger.With("component", "session_sweeper"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the sweep loop.
func (w *Sweeper) Start() {
	w.wg.Add(1)
	go w.run()

	w.logger.Info("session sweeper started",
		"idle_ttl", w.config.IdleTTL.String(),
		"interval", w.config.Interval.String())
}

// Stop halts the sweep loop and waits for it to exit.
func (w *Sweeper) Stop() {
	w.cancel()
	w.wg.Wait()
	w.logger.Info("session sweeper stopped")
}

func (w *Sweeper) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evicted := w.store.EvictIdle(w.config.IdleTTL)
			w.logger.Debug("session sweep complete",
				"evicted", evicted,
				"active_sessions", w.store.Len())
		}
	}
}
