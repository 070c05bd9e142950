package directory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/nowplaying/internal/clients/scraper"
	"github.com/KirkDiggler/nowplaying/internal/common/clock"
	"github.com/KirkDiggler/nowplaying/internal/models"
	playerRepo "github.com/KirkDiggler/nowplaying/internal/repositories/player"
	"github.com/KirkDiggler/nowplaying/internal/services/performance"
)

// Config holds configuration for the directory service
type Config struct {
	// Repository persists the profile document
	Repository playerRepo.Repository

	// Provider scrapes leaderboard and profile data
	Provider scraper.Provider

	// Clock defaults to the system clock
	Clock clock.Clock
}

// service implements the Service interface. The profile map is fully
// materialized and every mutation is persisted while mu is held.
type service struct {
	repository playerRepo.Repository
	provider   scraper.Provider
	clock      clock.Clock

	mu       sync.Mutex
	profiles map[string]*models.PlayerProfile
}

// New creates a directory service and loads the stored profiles
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.Provider == nil {
		return nil, errors.New("scrape provider cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	loaded, err := cfg.Repository.LoadProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	log.Printf("DIRECTORY: loaded %d profiles", len(loaded.Profiles))

	return &service{
		repository: cfg.Repository,
		provider:   cfg.Provider,
		clock:      clk,
		profiles:   loaded.Profiles,
	}, nil
}

// Link attaches an account to an external player profile
func (s *service) Link(ctx context.Context, input *LinkInput) (*LinkOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	externalID, ok := NormalizeExternalID(input.ExternalID)
	if !ok {
		return &LinkOutput{Failure: LinkFailureInvalidID}, nil
	}

	s.mu.Lock()
	held := s.heldByOtherLocked(externalID, input.AccountID)
	s.mu.Unlock()
	if held {
		return &LinkOutput{Failure: LinkFailureHeldByOther}, nil
	}

	// Best effort, the link stands without a name
	displayName := ""
	scraped, err := s.provider.FetchProfile(ctx, &scraper.FetchProfileInput{ExternalID: externalID})
	if err != nil {
		log.Printf("DIRECTORY: could not scrape profile %s while linking: %v", externalID, err)
	} else if scraped.DisplayName != "" {
		displayName = scraped.DisplayName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The scrape released the lock, check again
	if s.heldByOtherLocked(externalID, input.AccountID) {
		return &LinkOutput{Failure: LinkFailureHeldByOther}, nil
	}

	previous := ""
	for id, profile := range s.profiles {
		if profile.LinkedAccountID == input.AccountID && id != externalID {
			profile.LinkedAccountID = ""
			previous = id
		}
	}

	profile, exists := s.profiles[externalID]
	if !exists {
		profile = &models.PlayerProfile{
			ExternalID:  externalID,
			RecentPlays: []*models.Play{},
		}
		s.profiles[externalID] = profile
	}

	if displayName != "" {
		profile.DisplayName = displayName
	}
	profile.LinkedAccountID = input.AccountID
	profile.LastUpdated = s.clock.Now()

	s.persistLocked(ctx)

	log.Printf("DIRECTORY: linked account %s to profile %s", input.AccountID, externalID)

	return &LinkOutput{
		Success:            true,
		Profile:            profile.Clone(),
		PreviousExternalID: previous,
	}, nil
}

// Unlink releases the profile held by an account
func (s *service) Unlink(ctx context.Context, input *UnlinkInput) (*UnlinkOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.byAccountLocked(input.AccountID)
	if profile == nil {
		return &UnlinkOutput{}, nil
	}

	profile.LinkedAccountID = ""
	s.persistLocked(ctx)

	log.Printf("DIRECTORY: unlinked account %s from profile %s", input.AccountID, profile.ExternalID)

	return &UnlinkOutput{
		Success:    true,
		ExternalID: profile.ExternalID,
	}, nil
}

// Refresh updates the directory from the scraper. A leaderboard failure is
// returned without touching stored state. Individual profile failures keep
// the previous plays. Cancelling ctx stops the profile scrapes, and what was
// fetched so far is still applied and persisted before the error is returned.
func (s *service) Refresh(ctx context.Context) (*RefreshOutput, error) {
	leaderboard, err := s.provider.FetchLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	now := s.clock.Now()
	discovered := make([]string, 0)

	s.mu.Lock()
	for _, row := range leaderboard.Rows {
		if row == nil || row.ExternalID == "" {
			continue
		}

		profile, exists := s.profiles[row.ExternalID]
		if !exists {
			profile = &models.PlayerProfile{
				ExternalID:  row.ExternalID,
				RecentPlays: []*models.Play{},
			}
			s.profiles[row.ExternalID] = profile
			discovered = append(discovered, row.DisplayName)
			log.Printf("DIRECTORY: discovered new player %s (%s)", row.DisplayName, row.ExternalID)
		}

		if row.DisplayName != "" {
			profile.DisplayName = row.DisplayName
		}
		rating := row.Rating
		profile.SkillRating = &rating
		if row.Rank > 0 {
			rank := row.Rank
			profile.Rank = &rank
		} else {
			profile.Rank = nil
		}
		profile.LastUpdated = now
	}

	externalIDs := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		externalIDs = append(externalIDs, id)
	}
	s.mu.Unlock()

	sort.Strings(externalIDs)

	// Scrape without holding the lock, apply results in one pass afterwards
	scraped := make(map[string]*scraper.FetchProfileOutput, len(externalIDs))
	failed := make([]string, 0)
	var interrupted error
	for _, id := range externalIDs {
		if err := ctx.Err(); err != nil {
			interrupted = err
			break
		}

		out, err := s.provider.FetchProfile(ctx, &scraper.FetchProfileInput{ExternalID: id})
		if err != nil {
			log.Printf("DIRECTORY: failed to scrape profile %s, keeping previous plays: %v", id, err)
			failed = append(failed, id)
			continue
		}
		scraped[id] = out
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, out := range scraped {
		profile, exists := s.profiles[id]
		if !exists {
			continue
		}
		if out.DisplayName != "" {
			profile.DisplayName = out.DisplayName
		}
		plays := make([]*models.Play, 0, len(out.RecentPlays))
		for _, play := range out.RecentPlays {
			if play != nil {
				plays = append(plays, play)
			}
		}
		profile.RecentPlays = plays
		profile.LastUpdated = now
	}

	s.persistLocked(ctx)

	if interrupted != nil {
		log.Printf("DIRECTORY: refresh interrupted after %d of %d profiles: %v", len(scraped)+len(failed), len(externalIDs), interrupted)
		return nil, interrupted
	}

	log.Printf("DIRECTORY: refresh complete, %d new players, %d profile failures", len(discovered), len(failed))

	return &RefreshOutput{
		Discovered:     discovered,
		FailedProfiles: failed,
	}, nil
}

// GetProfile returns a copy of the profile for an external ID
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	externalID, ok := NormalizeExternalID(input.ExternalID)
	if !ok {
		externalID = input.ExternalID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetProfileOutput{
		Profile: s.profiles[externalID].Clone(),
	}, nil
}

// GetProfileByAccount returns a copy of the profile linked to an account
func (s *service) GetProfileByAccount(ctx context.Context, input *GetProfileByAccountInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetProfileOutput{
		Profile: s.byAccountLocked(input.AccountID).Clone(),
	}, nil
}

// GetLeaderboard returns ranked players
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := DefaultLeaderboardLimit
	if input != nil && input.Limit != 0 {
		limit = input.Limit
	}

	s.mu.Lock()
	profiles := make([]*models.PlayerProfile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		profiles = append(profiles, profile.Clone())
	}
	s.mu.Unlock()

	ranked := performance.Leaderboard(profiles, limit)

	entries := make([]*models.LeaderboardEntry, 0, len(ranked))
	for _, profile := range ranked {
		entries = append(entries, &models.LeaderboardEntry{
			Rank:            *profile.Rank,
			ExternalID:      profile.ExternalID,
			DisplayName:     profile.DisplayName,
			SkillRating:     profile.SkillRating,
			LinkedAccountID: profile.LinkedAccountID,
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// ListLinkedProfiles returns copies of every linked profile ordered by external ID
func (s *service) ListLinkedProfiles(ctx context.Context) (*ListLinkedProfilesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	linked := make([]*models.PlayerProfile, 0)
	for _, profile := range s.profiles {
		if profile.IsLinked() {
			linked = append(linked, profile.Clone())
		}
	}

	sort.Slice(linked, func(i, j int) bool {
		return linked[i].ExternalID < linked[j].ExternalID
	})

	return &ListLinkedProfilesOutput{
		Profiles: linked,
	}, nil
}

func (s *service) heldByOtherLocked(externalID, accountID string) bool {
	profile, exists := s.profiles[externalID]
	return exists && profile.IsLinked() && profile.LinkedAccountID != accountID
}

func (s *service) byAccountLocked(accountID string) *models.PlayerProfile {
	if accountID == "" {
		return nil
	}
	for _, profile := range s.profiles {
		if profile.LinkedAccountID == accountID {
			return profile
		}
	}
	return nil
}

// persistLocked writes the profile document without ctx cancellation.
// Failures are logged and the in-memory state is kept.
func (s *service) persistLocked(ctx context.Context) {
	if err := s.repository.SaveProfiles(context.WithoutCancel(ctx), &playerRepo.SaveProfilesInput{
		Profiles: s.profiles,
	}); err != nil {
		log.Printf("DIRECTORY: failed to persist profiles: %v", err)
	}
}
