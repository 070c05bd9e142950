// Package reconcile drives the periodic scrape, new score detection and
// session sweep.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/common/clock"
	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	"github.com/KirkDiggler/nowplaying/internal/services/schedule"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
)

// DefaultInterval is the time between ticks
const DefaultInterval = 60 * time.Second

// Config holds configuration for the loop
type Config struct {
	Directory directory.Service
	Sessions  session.Service
	Breaker   *Breaker

	// Guard skips ticks outside operating hours, nil means always open
	Guard schedule.Guard

	// Clock defaults to the system clock
	Clock clock.Clock

	// Interval defaults to DefaultInterval
	Interval time.Duration
}

// TickOutput describes what one tick did
type TickOutput struct {
	// Skipped is set when the tick ran outside operating hours
	Skipped bool

	// Primed is set on the tick that seeded the play cursor
	Primed bool

	// Dispatched are accounts a new score was processed for
	Dispatched []string

	Sweep *session.SweepStaleOutput
}

// Status is a snapshot of the loop for status reporting
type Status struct {
	LastTick  time.Time
	LastError string
	Breaker   BreakerStatus
}

// Loop is the reconciliation loop. Only one tick runs at a time.
type Loop struct {
	directory directory.Service
	sessions  session.Service
	breaker   *Breaker
	guard     schedule.Guard
	clock     clock.Clock
	interval  time.Duration

	tickMu sync.Mutex
	// cursor holds the last seen play timestamp per external ID
	cursor map[string]string
	primed bool

	statusMu  sync.Mutex
	lastTick  time.Time
	lastError string
}

// New creates a reconciliation loop
func New(cfg *Config) (*Loop, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Directory == nil {
		return nil, errors.New("directory service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.Breaker == nil {
		return nil, errors.New("breaker cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Loop{
		directory: cfg.Directory,
		sessions:  cfg.Sessions,
		breaker:   cfg.Breaker,
		guard:     cfg.Guard,
		clock:     clk,
		interval:  interval,
		cursor:    make(map[string]string),
	}, nil
}

// Run ticks immediately and then every interval until ctx is done. Tick
// errors are logged and never stop the loop. A tick that has started runs
// to completion after ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("RECONCILE: starting loop every %s", l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	tickCtx := context.WithoutCancel(ctx)
	for {
		if _, err := l.Tick(tickCtx); err != nil {
			log.Printf("RECONCILE: tick failed: %v", err)
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}

		// Both cases can be ready at once
		if err := ctx.Err(); err != nil {
			log.Printf("RECONCILE: loop stopped")
			return err
		}
	}
}

// Tick runs one reconciliation pass
func (l *Loop) Tick(ctx context.Context) (*TickOutput, error) {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	out, err := l.tick(ctx)

	l.statusMu.Lock()
	l.lastTick = l.clock.Now()
	l.lastError = ""
	if err != nil {
		l.lastError = err.Error()
	}
	l.statusMu.Unlock()

	return out, err
}

// Status returns the last tick time, the last tick error and the breaker state
func (l *Loop) Status() Status {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()

	return Status{
		LastTick:  l.lastTick,
		LastError: l.lastError,
		Breaker:   l.breaker.Status(),
	}
}

func (l *Loop) tick(ctx context.Context) (*TickOutput, error) {
	out := &TickOutput{
		Dispatched: []string{},
	}

	if l.guard != nil && !l.guard.IsOpen(l.clock.Now()) {
		out.Skipped = true
		return out, nil
	}

	if _, err := l.directory.Refresh(ctx); err != nil {
		l.breaker.RecordFailure(ctx)
		return nil, fmt.Errorf("failed to refresh directory: %w", err)
	}
	l.breaker.RecordSuccess(ctx)

	dispatched, primed, err := l.detectNewScores(ctx)
	if err != nil {
		return nil, err
	}
	out.Dispatched = dispatched
	out.Primed = primed

	sweep, err := l.sessions.SweepStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	out.Sweep = sweep

	return out, nil
}

// detectNewScores compares each linked player's latest play against the
// cursor. The first pass only seeds the cursor. A player seen for the first
// time after that is also seeded without a dispatch. Players without plays
// are tracked with an empty timestamp so their first play counts.
func (l *Loop) detectNewScores(ctx context.Context) ([]string, bool, error) {
	linked, err := l.directory.ListLinkedProfiles(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list linked profiles: %w", err)
	}

	dispatched := []string{}

	if !l.primed {
		for _, profile := range linked.Profiles {
			l.cursor[profile.ExternalID] = latestTimestamp(profile)
		}
		l.primed = true
		log.Printf("RECONCILE: seeded play cursor for %d players", len(l.cursor))
		return dispatched, true, nil
	}

	for _, profile := range linked.Profiles {
		timestamp := latestTimestamp(profile)
		lastSeen, known := l.cursor[profile.ExternalID]
		if !known {
			l.cursor[profile.ExternalID] = timestamp
			continue
		}
		if timestamp == "" || timestamp == lastSeen {
			continue
		}

		log.Printf("RECONCILE: new score for %s (%s)", profile.ExternalID, profile.DisplayName)

		if _, err := l.sessions.ProcessNewScore(ctx, &session.ProcessNewScoreInput{
			AccountID: profile.LinkedAccountID,
		}); err != nil {
			log.Printf("RECONCILE: failed to process new score for %s: %v", profile.LinkedAccountID, err)
			continue
		}

		l.cursor[profile.ExternalID] = timestamp
		dispatched = append(dispatched, profile.LinkedAccountID)
	}

	return dispatched, false, nil
}

func latestTimestamp(profile *models.PlayerProfile) string {
	if latest := profile.LatestPlay(); latest != nil {
		return latest.Timestamp
	}
	return ""
}
