package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionFacade exposes the subset of application functionality required by the worker.
type SessionFacade interface {
	SweepSessions(ctx context.Context) (int64, error)
}

// SessionSweeper periodically drops expired sessions from the token store.
type SessionSweeper struct {
	facade   SessionFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionSweeper constructs sweeper running every interval.
func NewSessionSweeper(facade SessionFacade, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping. Calling Start on a running sweeper is a no-op.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	purged, err := s.facade.SweepSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("session sweep failed", slog.String("error", err.Error()))
		}
		return
	}
	if purged > 0 {
		s.logger.Info("expired sessions purged", slog.Int64("count", purged))
	}
}
