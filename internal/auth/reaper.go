package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/rohits-web03/passvault/internal/repositories"
)

// RunReaper prunes expired sessions every interval until ctx is done.
func RunReaper(ctx context.Context, reaper repositories.SessionReaper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			reap(ctx, reaper, now)
		}
	}
}

func reap(ctx context.Context, reaper repositories.SessionReaper, now time.Time) {
	n, err := reaper.DeleteExpired(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to prune sessions", "error", err)
		return
	}
	if n > 0 {
		slog.DebugContext(ctx, "pruned expired sessions", "count", n)
	}
}
