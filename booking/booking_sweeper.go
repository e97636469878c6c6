package booking

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper calls Sweep every interval until ctx is done. Reads sweep lazily as well, so
// the ticker only keeps statuses fresh for clients that never read.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("booking sweep failed", zap.Error(err))
			}
		}
	}
}
