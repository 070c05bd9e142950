package reconcile

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/KirkDiggler/nowplaying/internal/services/notification"
)

const (
	// DefaultFailureThreshold is how many consecutive failures mark scraping down
	DefaultFailureThreshold = 3

	downMessage      = "System is DOWN: scraping failures have reached threshold."
	recoveredMessage = "System has RECOVERED: scraping is working again."
)

// BreakerConfig holds configuration for the scrape breaker
type BreakerConfig struct {
	Notifier notification.Notifier

	// Threshold defaults to DefaultFailureThreshold
	Threshold int
}

// Breaker tracks consecutive refresh failures. It alerts admins once when
// scraping goes down and once when it recovers.
type Breaker struct {
	notifier  notification.Notifier
	threshold int

	mu       sync.Mutex
	failures int
	down     bool
}

// BreakerStatus is a snapshot of the breaker
type BreakerStatus struct {
	Down                bool
	ConsecutiveFailures int
}

// NewBreaker creates a breaker
func NewBreaker(cfg *BreakerConfig) (*Breaker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}

	return &Breaker{
		notifier:  cfg.Notifier,
		threshold: threshold,
	}, nil
}

// RecordFailure counts a failed refresh and alerts on the transition to down
func (b *Breaker) RecordFailure(ctx context.Context) {
	b.mu.Lock()
	b.failures++
	tripped := !b.down && b.failures >= b.threshold
	if tripped {
		b.down = true
	}
	failures := b.failures
	b.mu.Unlock()

	if tripped {
		log.Printf("RECONCILE: scraping marked down after %d consecutive failures", failures)
		b.alert(ctx, downMessage)
	}
}

// RecordSuccess resets the failure count and alerts if scraping was down
func (b *Breaker) RecordSuccess(ctx context.Context) {
	b.mu.Lock()
	recovered := b.down
	b.down = false
	b.failures = 0
	b.mu.Unlock()

	if recovered {
		log.Printf("RECONCILE: scraping recovered")
		b.alert(ctx, recoveredMessage)
	}
}

// Status returns the current breaker state
func (b *Breaker) Status() BreakerStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BreakerStatus{
		Down:                b.down,
		ConsecutiveFailures: b.failures,
	}
}

func (b *Breaker) alert(ctx context.Context, message string) {
	if err := b.notifier.AlertAdmin(ctx, &notification.AlertAdminInput{Message: message}); err != nil {
		log.Printf("RECONCILE: failed to send admin alert: %v", err)
	}
}
