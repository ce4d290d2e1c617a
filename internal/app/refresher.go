package app

import (
	"context"
	"log"
	"time"
)

const maxBackoff = 30 * time.Second

// catalogLoader is the part of browse.Model the refresher drives.
type catalogLoader interface {
	Refresh(ctx context.Context, active func() bool) error
}

// StartRefresher reloads the catalog every interval while signedIn reports
// true. A reload still in flight when signedIn turns false is dropped.
// Consecutive failures stretch the wait up to maxBackoff. It returns
// immediately; the goroutine stops when ctx is done.
func StartRefresher(ctx context.Context, loader catalogLoader, signedIn func() bool, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if signedIn() {
				if err := loader.Refresh(ctx, signedIn); err != nil {
					if ctx.Err() != nil {
						return
					}
					failures++
					log.Printf("catalog refresh failed (%d in a row): %v", failures, err)
				} else {
					failures = 0
				}
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
