package performance

import "github.com/KirkDiggler/nowplaying/internal/models"

// DefaultTiers is the Volforce class table, ascending by threshold.
func DefaultTiers() []models.MilestoneTier {
	return []models.MilestoneTier{
		{Name: "Sienna I", Threshold: 0.000},
		{Name: "Sienna II", Threshold: 2.500},
		{Name: "Sienna III", Threshold: 5.000},
		{Name: "Sienna IV", Threshold: 7.500},
		{Name: "Cobalt I", Threshold: 10.000},
		{Name: "Cobalt II", Threshold: 10.500},
		{Name: "Cobalt III", Threshold: 11.000},
		{Name: "Cobalt IV", Threshold: 11.500},
		{Name: "Dandelion I", Threshold: 12.000},
		{Name: "Dandelion II", Threshold: 12.500},
		{Name: "Dandelion III", Threshold: 13.000},
		{Name: "Dandelion IV", Threshold: 13.500},
		{Name: "Cyan I", Threshold: 14.000},
		{Name: "Cyan II", Threshold: 14.250},
		{Name: "Cyan III", Threshold: 14.500},
		{Name: "Cyan IV", Threshold: 14.750},
		{Name: "Scarlet I", Threshold: 15.000},
		{Name: "Scarlet II", Threshold: 15.250},
		{Name: "Scarlet III", Threshold: 15.500},
		{Name: "Scarlet IV", Threshold: 15.750},
		{Name: "Coral I", Threshold: 16.000},
		{Name: "Coral II", Threshold: 16.250},
		{Name: "Coral III", Threshold: 16.500},
		{Name: "Coral IV", Threshold: 16.750},
		{Name: "Argento I", Threshold: 17.000},
		{Name: "Argento II", Threshold: 17.250},
		{Name: "Argento III", Threshold: 17.500},
		{Name: "Argento IV", Threshold: 17.750},
		{Name: "Eldora I", Threshold: 18.000},
		{Name: "Eldora II", Threshold: 18.250},
		{Name: "Eldora III", Threshold: 18.500},
		{Name: "Eldora IV", Threshold: 18.750},
		{Name: "Crimson I", Threshold: 19.000},
		{Name: "Crimson II", Threshold: 19.250},
		{Name: "Crimson III", Threshold: 19.500},
		{Name: "Crimson IV", Threshold: 19.750},
		{Name: "Imperial I", Threshold: 20.000},
		{Name: "Imperial II", Threshold: 21.000},
		{Name: "Imperial III", Threshold: 22.000},
		{Name: "Imperial IV", Threshold: 23.000},
	}
}
