package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/common/clock"
	"github.com/KirkDiggler/nowplaying/internal/common/uuid"
	"github.com/KirkDiggler/nowplaying/internal/models"
	sessionRepo "github.com/KirkDiggler/nowplaying/internal/repositories/session"
	"github.com/KirkDiggler/nowplaying/internal/services/access"
	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	"github.com/KirkDiggler/nowplaying/internal/services/notification"
	"github.com/KirkDiggler/nowplaying/internal/services/performance"
)

// Config holds configuration for the session service
type Config struct {
	Repository sessionRepo.Repository
	Directory  directory.Service
	Evaluator  *performance.Evaluator
	Notifier   notification.Notifier
	Access     access.Controller

	// Clock defaults to the system clock
	Clock clock.Clock

	// UUID defaults to random UUIDs
	UUID uuid.UUID

	// Location is used to parse play timestamps, defaults to UTC
	Location *time.Location

	// Zero durations fall back to the package defaults
	IdleTimeout    time.Duration
	BreakTimeout   time.Duration
	OnBreakTimeout time.Duration
}

// service implements the Service interface. The session map is the single
// shared document; every read-modify-write runs under mu and is persisted
// before the lock is released. Access changes and notifications run after
// the lock is released, with access changes kept in commit order.
type service struct {
	repository sessionRepo.Repository
	directory  directory.Service
	evaluator  *performance.Evaluator
	notifier   notification.Notifier
	access     access.Controller
	clock      clock.Clock
	uuid       uuid.UUID
	location   *time.Location

	idleTimeout    time.Duration
	breakTimeout   time.Duration
	onBreakTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*models.SessionRecord
	order    *accessOrder
}

// New creates a session service and loads the stored sessions
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Directory == nil {
		return nil, errors.New("directory service cannot be nil")
	}

	if cfg.Evaluator == nil {
		return nil, errors.New("performance evaluator cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	if cfg.Access == nil {
		return nil, errors.New("access controller cannot be nil")
	}

	svc := &service{
		repository:     cfg.Repository,
		directory:      cfg.Directory,
		evaluator:      cfg.Evaluator,
		notifier:       cfg.Notifier,
		access:         cfg.Access,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
		location:       cfg.Location,
		idleTimeout:    cfg.IdleTimeout,
		breakTimeout:   cfg.BreakTimeout,
		onBreakTimeout: cfg.OnBreakTimeout,
		order:          newAccessOrder(),
	}

	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.uuid == nil {
		svc.uuid = uuid.New()
	}
	if svc.location == nil {
		svc.location = time.UTC
	}
	if svc.idleTimeout == 0 {
		svc.idleTimeout = DefaultIdleTimeout
	}
	if svc.breakTimeout == 0 {
		svc.breakTimeout = DefaultBreakTimeout
	}
	if svc.onBreakTimeout == 0 {
		svc.onBreakTimeout = DefaultOnBreakTimeout
	}

	loaded, err := cfg.Repository.LoadSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	svc.sessions = loaded.Sessions

	log.Printf("SESSION: loaded %d sessions", len(svc.sessions))

	return svc, nil
}

// GetActive returns a copy of the active session
func (s *service) GetActive(ctx context.Context) (*GetActiveOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetActiveOutput{
		Session: s.activeLocked().Clone(),
	}, nil
}

// GetSession returns a copy of an account's session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetSessionOutput{
		Session: s.sessions[input.AccountID].Clone(),
	}, nil
}

// ListSessions returns copies of every session ordered by start time
func (s *service) ListSessions(ctx context.Context) (*ListSessionsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]*models.SessionRecord, 0, len(s.sessions))
	for _, record := range s.sessions {
		sessions = append(sessions, record.Clone())
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartTime.Equal(sessions[j].StartTime) {
			return sessions[i].StartTime.Before(sessions[j].StartTime)
		}
		return sessions[i].AccountID < sessions[j].AccountID
	})

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// StartManual creates a manual session unless another session is active
func (s *service) StartManual(ctx context.Context, input *StartManualInput) (*StartManualOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	initialRating := s.currentRating(ctx, input.AccountID)

	s.mu.Lock()
	if active := s.activeLocked(); active != nil {
		s.mu.Unlock()
		return &StartManualOutput{HolderAccountID: active.AccountID}, nil
	}

	now := s.clock.Now()
	record := &models.SessionRecord{
		ID:            s.uuid.NewUUID(),
		AccountID:     input.AccountID,
		Status:        models.SessionStatusActive,
		Type:          models.SessionTypeManual,
		StartTime:     now,
		LastActivity:  now,
		InitialRating: initialRating,
		SongsPlayed:   0,
	}
	s.sessions[input.AccountID] = record
	s.persistLocked(ctx)
	out := record.Clone()
	turn := s.order.take()
	s.mu.Unlock()

	log.Printf("SESSION: account %s checked in", input.AccountID)
	s.order.run(turn, func() { s.grant(ctx, input.AccountID) })

	return &StartManualOutput{
		Success: true,
		Session: out,
	}, nil
}

// ProcessNewScore applies one detected play. Scores from an account that
// does not hold the machine are ignored while another session is active.
func (s *service) ProcessNewScore(ctx context.Context, input *ProcessNewScoreInput) (*ProcessNewScoreOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	initialRating := s.currentRating(ctx, input.AccountID)

	s.mu.Lock()
	if active := s.activeLocked(); active != nil && active.AccountID != input.AccountID {
		s.mu.Unlock()
		log.Printf("SESSION: ignoring score for %s, machine held by %s", input.AccountID, active.AccountID)
		return &ProcessNewScoreOutput{Result: ScoreResultIgnored}, nil
	}

	now := s.clock.Now()
	var result ScoreResult
	record, exists := s.sessions[input.AccountID]
	switch {
	case !exists:
		record = &models.SessionRecord{
			ID:            s.uuid.NewUUID(),
			AccountID:     input.AccountID,
			Status:        models.SessionStatusActive,
			Type:          models.SessionTypeAuto,
			StartTime:     now,
			LastActivity:  now,
			InitialRating: initialRating,
			SongsPlayed:   1,
		}
		s.sessions[input.AccountID] = record
		result = ScoreResultStarted
	case record.IsPaused():
		record.Status = models.SessionStatusActive
		record.LastActivity = now
		record.SongsPlayed++
		record.ReminderSent = false
		result = ScoreResultResumed
	default:
		record.LastActivity = now
		record.SongsPlayed++
		result = ScoreResultCounted
	}
	s.persistLocked(ctx)
	out := record.Clone()
	turn := s.order.take()
	s.mu.Unlock()

	s.order.run(turn, func() {
		if result == ScoreResultStarted || result == ScoreResultResumed {
			log.Printf("SESSION: score %s session for %s", result, input.AccountID)
			s.grant(ctx, input.AccountID)
		}
	})

	return &ProcessNewScoreOutput{
		Result:  result,
		Session: out,
	}, nil
}

// Pause moves an active session to on_break
func (s *service) Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	s.mu.Lock()
	record, exists := s.sessions[input.AccountID]
	if !exists || !record.IsActive() {
		s.mu.Unlock()
		return &PauseOutput{}, nil
	}

	record.Status = models.SessionStatusOnBreak
	record.LastActivity = s.clock.Now()
	s.persistLocked(ctx)
	turn := s.order.take()
	s.mu.Unlock()

	log.Printf("SESSION: account %s is on break", input.AccountID)
	s.order.run(turn, func() { s.revoke(ctx, input.AccountID) })

	return &PauseOutput{Success: true}, nil
}

// End removes the account's session and returns its summary
func (s *service) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	return s.end(ctx, input.AccountID, s.clock.Now()), nil
}

// ForceEnd ends a session regardless of its status
func (s *service) ForceEnd(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	out := s.end(ctx, input.AccountID, s.clock.Now())
	if out.Summary != nil {
		log.Printf("SESSION: session for %s was force ended", input.AccountID)
	}
	return out, nil
}

// SweepStale applies idle and break timeouts. One now is used for every record.
func (s *service) SweepStale(ctx context.Context) (*SweepStaleOutput, error) {
	now := s.clock.Now()

	out := &SweepStaleOutput{
		PendingBreak: []string{},
		Reminded:     []string{},
		Ended:        []*models.SessionSummary{},
	}

	var remind, revoke []string
	ended := make([]*models.SessionRecord, 0)

	s.mu.Lock()
	accountIDs := make([]string, 0, len(s.sessions))
	for accountID := range s.sessions {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	changed := false
	for _, accountID := range accountIDs {
		record := s.sessions[accountID]
		idle := record.IdleFor(now)

		switch {
		case record.Status == models.SessionStatusActive && idle > s.idleTimeout:
			record.Status = models.SessionStatusPendingBreak
			record.LastActivity = now
			if !record.ReminderSent {
				record.ReminderSent = true
				remind = append(remind, accountID)
			}
			revoke = append(revoke, accountID)
			out.PendingBreak = append(out.PendingBreak, accountID)
			changed = true
		case record.Status == models.SessionStatusPendingBreak && idle > s.breakTimeout:
			ended = append(ended, record)
			delete(s.sessions, accountID)
			changed = true
		case record.Status == models.SessionStatusOnBreak && idle > s.onBreakTimeout:
			log.Printf("SESSION: cleaning up abandoned break for %s", accountID)
			ended = append(ended, record)
			delete(s.sessions, accountID)
			changed = true
		}
	}

	if changed {
		s.persistLocked(ctx)
	}
	turn := s.order.take()
	s.mu.Unlock()

	s.order.run(turn, func() {
		for _, accountID := range revoke {
			s.revoke(ctx, accountID)
		}
		for _, record := range ended {
			s.revoke(ctx, record.AccountID)
		}
	})

	for _, accountID := range remind {
		if err := s.notifier.RemindIdle(ctx, &notification.RemindIdleInput{AccountID: accountID}); err != nil {
			log.Printf("SESSION: failed to send idle reminder to %s: %v", accountID, err)
			continue
		}
		out.Reminded = append(out.Reminded, accountID)
	}

	for _, record := range ended {
		summary := s.summarize(ctx, record, now)
		if err := s.notifier.PostSessionSummary(ctx, &notification.PostSessionSummaryInput{Summary: summary}); err != nil {
			log.Printf("SESSION: failed to post summary for %s: %v", record.AccountID, err)
		}
		out.Ended = append(out.Ended, summary)
	}

	return out, nil
}

// end removes the record under the lock, then builds the summary and
// revokes access outside it
func (s *service) end(ctx context.Context, accountID string, now time.Time) *EndOutput {
	s.mu.Lock()
	record, exists := s.sessions[accountID]
	if !exists {
		s.mu.Unlock()
		return &EndOutput{}
	}
	delete(s.sessions, accountID)
	s.persistLocked(ctx)
	turn := s.order.take()
	s.mu.Unlock()

	s.order.run(turn, func() { s.revoke(ctx, accountID) })
	summary := s.summarize(ctx, record, now)

	log.Printf("SESSION: account %s checked out after %s", accountID, summary.Duration.Round(time.Second))

	return &EndOutput{Summary: summary}
}

// summarize builds the summary of a removed session and announces any
// milestone reached
func (s *service) summarize(ctx context.Context, record *models.SessionRecord, now time.Time) *models.SessionSummary {
	summary := &models.SessionSummary{
		SessionID:     record.ID,
		AccountID:     record.AccountID,
		Type:          record.Type,
		StartTime:     record.StartTime,
		EndTime:       now,
		Duration:      now.Sub(record.StartTime),
		SongsPlayed:   record.SongsPlayed,
		NewRecords:    []*models.Play{},
		InitialRating: record.InitialRating,
	}

	profileOut, err := s.directory.GetProfileByAccount(ctx, &directory.GetProfileByAccountInput{
		AccountID: record.AccountID,
	})
	if err != nil {
		log.Printf("SESSION: failed to look up profile for %s: %v", record.AccountID, err)
		return summary
	}

	profile := profileOut.Profile
	if profile == nil {
		return summary
	}

	summary.ExternalID = profile.ExternalID
	summary.PlayerName = profile.DisplayName
	summary.FinalRating = profile.SkillRating
	summary.NewRecords = performance.NewRecords(s.playsSince(profile.RecentPlays, record.StartTime))
	summary.Milestone = s.evaluator.Milestone(record.InitialRating, profile.SkillRating)

	if summary.Milestone != "" {
		if err := s.notifier.PostMilestone(ctx, &notification.PostMilestoneInput{
			PlayerName: summary.PlayerName,
			TierName:   summary.Milestone,
		}); err != nil {
			log.Printf("SESSION: failed to announce milestone for %s: %v", record.AccountID, err)
		}
	}

	return summary
}

// playsSince keeps plays at or after start. Unparseable timestamps are skipped.
func (s *service) playsSince(plays []*models.Play, start time.Time) []*models.Play {
	kept := make([]*models.Play, 0, len(plays))
	for _, play := range plays {
		if play == nil {
			continue
		}
		playedAt, err := play.PlayedAt(s.location)
		if err != nil {
			continue
		}
		if !playedAt.Before(start) {
			kept = append(kept, play)
		}
	}
	return kept
}

func (s *service) currentRating(ctx context.Context, accountID string) *float64 {
	out, err := s.directory.GetProfileByAccount(ctx, &directory.GetProfileByAccountInput{
		AccountID: accountID,
	})
	if err != nil {
		log.Printf("SESSION: failed to look up rating for %s: %v", accountID, err)
		return nil
	}
	if out.Profile == nil {
		return nil
	}
	return out.Profile.SkillRating
}

func (s *service) activeLocked() *models.SessionRecord {
	for _, record := range s.sessions {
		if record.IsActive() {
			return record
		}
	}
	return nil
}

// persistLocked writes the session document. The write is not cancelled
// with ctx since memory has already changed. Failures are logged and the
// in-memory state is kept.
func (s *service) persistLocked(ctx context.Context) {
	if err := s.repository.SaveSessions(context.WithoutCancel(ctx), &sessionRepo.SaveSessionsInput{
		Sessions: s.sessions,
	}); err != nil {
		log.Printf("SESSION: failed to persist sessions: %v", err)
	}
}

func (s *service) grant(ctx context.Context, accountID string) {
	if err := s.access.Grant(ctx, accountID); err != nil {
		log.Printf("SESSION: failed to grant access to %s: %v", accountID, err)
	}
}

func (s *service) revoke(ctx context.Context, accountID string) {
	if err := s.access.Revoke(ctx, accountID); err != nil {
		log.Printf("SESSION: failed to revoke access from %s: %v", accountID, err)
	}
}
