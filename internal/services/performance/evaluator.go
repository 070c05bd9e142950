// Package performance holds the stateless rules for records, rating
// milestones and leaderboard ordering.
package performance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/nowplaying/internal/models"
)

// ErrNoTiers is returned when an evaluator is configured with an empty table
var ErrNoTiers = errors.New("milestone tier table cannot be empty")

// Config holds configuration for the evaluator
type Config struct {
	// Tiers is the milestone table, defaults to DefaultTiers
	Tiers []models.MilestoneTier
}

// Evaluator applies a milestone tier table
type Evaluator struct {
	tiers []models.MilestoneTier
}

// New creates an evaluator. Tiers are copied and sorted ascending by threshold.
func New(cfg *Config) (*Evaluator, error) {
	tiers := DefaultTiers()
	if cfg != nil && cfg.Tiers != nil {
		tiers = append([]models.MilestoneTier(nil), cfg.Tiers...)
	}

	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	seen := make(map[string]bool, len(tiers))
	for _, tier := range tiers {
		if tier.Name == "" {
			return nil, errors.New("milestone tier name cannot be empty")
		}
		if seen[tier.Name] {
			return nil, fmt.Errorf("duplicate milestone tier %q", tier.Name)
		}
		seen[tier.Name] = true
	}

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Threshold < tiers[j].Threshold
	})

	return &Evaluator{tiers: tiers}, nil
}

// Tiers returns a copy of the ascending tier table
func (e *Evaluator) Tiers() []models.MilestoneTier {
	return append([]models.MilestoneTier(nil), e.tiers...)
}

// Milestone returns the highest tier whose threshold is in (oldRating, newRating].
// Empty when either rating is unknown or no threshold was crossed.
func (e *Evaluator) Milestone(oldRating, newRating *float64) string {
	if oldRating == nil || newRating == nil {
		return ""
	}

	achieved := ""
	for _, tier := range e.tiers {
		if *oldRating < tier.Threshold && tier.Threshold <= *newRating {
			achieved = tier.Name
		}
	}
	return achieved
}

// TierFor returns the tier a rating currently sits in, empty below the first threshold
func (e *Evaluator) TierFor(rating *float64) string {
	if rating == nil {
		return ""
	}

	current := ""
	for _, tier := range e.tiers {
		if tier.Threshold > *rating {
			break
		}
		current = tier.Name
	}
	return current
}

// NewRecords returns the plays flagged as new records, keeping input order
func NewRecords(plays []*models.Play) []*models.Play {
	records := make([]*models.Play, 0)
	for _, play := range plays {
		if play != nil && play.IsNewRecord {
			records = append(records, play)
		}
	}
	return records
}

// Leaderboard returns ranked profiles ascending by rank, truncated to limit.
// Unranked profiles are dropped. A limit of zero or less means no limit.
func Leaderboard(profiles []*models.PlayerProfile, limit int) []*models.PlayerProfile {
	ranked := make([]*models.PlayerProfile, 0, len(profiles))
	for _, profile := range profiles {
		if profile != nil && profile.Rank != nil {
			ranked = append(ranked, profile)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if *ranked[i].Rank != *ranked[j].Rank {
			return *ranked[i].Rank < *ranked[j].Rank
		}
		return ranked[i].ExternalID < ranked[j].ExternalID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
