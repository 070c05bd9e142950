package performance

import (
	"testing"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 {
	return &v
}

func rank(v int) *int {
	return &v
}

func newEvaluator(t *testing.T, tiers []models.MilestoneTier) *Evaluator {
	t.Helper()
	evaluator, err := New(&Config{Tiers: tiers})
	require.NoError(t, err)
	return evaluator
}

func TestNewDefaultsToVolforceTable(t *testing.T) {
	evaluator, err := New(nil)
	require.NoError(t, err)
	tiers := evaluator.Tiers()
	require.Len(t, tiers, 40)
	assert.Equal(t, "Sienna I", tiers[0].Name)
	assert.Equal(t, "Imperial IV", tiers[len(tiers)-1].Name)
}

func TestNewRejectsBadTables(t *testing.T) {
	_, err := New(&Config{Tiers: []models.MilestoneTier{}})
	assert.ErrorIs(t, err, ErrNoTiers)

	_, err = New(&Config{Tiers: []models.MilestoneTier{{Name: "", Threshold: 1}}})
	assert.Error(t, err)

	_, err = New(&Config{Tiers: []models.MilestoneTier{{Name: "A", Threshold: 1}, {Name: "A", Threshold: 2}}})
	assert.Error(t, err)
}

func TestNewSortsTiers(t *testing.T) {
	evaluator := newEvaluator(t, []models.MilestoneTier{
		{Name: "High", Threshold: 20},
		{Name: "Low", Threshold: 10},
	})
	assert.Equal(t, "Low", evaluator.Tiers()[0].Name)
	assert.Equal(t, "High", evaluator.Milestone(rating(5), rating(25)))
}

func TestMilestone(t *testing.T) {
	evaluator := newEvaluator(t, nil)

	testCases := []struct {
		name      string
		oldRating *float64
		newRating *float64
		expected  string
	}{
		{name: "crosses a single threshold", oldRating: rating(14.9), newRating: rating(15.1), expected: "Scarlet I"},
		{name: "no change", oldRating: rating(15.1), newRating: rating(15.1), expected: ""},
		{name: "missing old rating", oldRating: nil, newRating: rating(15.1), expected: ""},
		{name: "missing new rating", oldRating: rating(14.9), newRating: nil, expected: ""},
		{name: "exact threshold counts", oldRating: rating(14.9), newRating: rating(15.0), expected: "Scarlet I"},
		{name: "starting on threshold does not count", oldRating: rating(15.0), newRating: rating(15.2), expected: ""},
		{name: "multiple tiers reports highest", oldRating: rating(14.9), newRating: rating(15.6), expected: "Scarlet III"},
		{name: "rating dropped", oldRating: rating(15.6), newRating: rating(14.9), expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, evaluator.Milestone(tc.oldRating, tc.newRating))
		})
	}
}

func TestTierFor(t *testing.T) {
	evaluator := newEvaluator(t, []models.MilestoneTier{
		{Name: "Bronze", Threshold: 10},
		{Name: "Silver", Threshold: 15},
	})

	assert.Equal(t, "", evaluator.TierFor(nil))
	assert.Equal(t, "", evaluator.TierFor(rating(9.99)))
	assert.Equal(t, "Bronze", evaluator.TierFor(rating(10)))
	assert.Equal(t, "Bronze", evaluator.TierFor(rating(14.999)))
	assert.Equal(t, "Silver", evaluator.TierFor(rating(30)))
}

func TestNewRecords(t *testing.T) {
	plays := []*models.Play{
		{Title: "A", IsNewRecord: true},
		{Title: "B"},
		nil,
		{Title: "C", IsNewRecord: true},
	}

	records := NewRecords(plays)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Title)
	assert.Equal(t, "C", records[1].Title)

	assert.Empty(t, NewRecords(nil))
	assert.NotNil(t, NewRecords(nil))
}

func TestLeaderboard(t *testing.T) {
	profiles := []*models.PlayerProfile{
		{ExternalID: "3", Rank: rank(3)},
		{ExternalID: "unranked"},
		{ExternalID: "1", Rank: rank(1)},
		{ExternalID: "2", Rank: rank(2)},
	}

	ordered := Leaderboard(profiles, 10)
	require.Len(t, ordered, 3)
	assert.Equal(t, "1", ordered[0].ExternalID)
	assert.Equal(t, "2", ordered[1].ExternalID)
	assert.Equal(t, "3", ordered[2].ExternalID)

	truncated := Leaderboard(profiles, 2)
	require.Len(t, truncated, 2)
	assert.Equal(t, "2", truncated[1].ExternalID)

	assert.Len(t, Leaderboard(profiles, 0), 3)
	assert.Empty(t, Leaderboard(nil, 10))
}
