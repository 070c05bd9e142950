package config

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/services/schedule"
	"gopkg.in/yaml.v3"
)

// LoadSchedule reads a weekly schedule file of the form
//
//	friday:
//	  open: "22:00"
//	  close: "02:00"
//
// An empty path returns nil, which the schedule treats as always open.
func LoadSchedule(path string) (map[string]schedule.Window, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	days := make(map[string]schedule.Window)
	if err := yaml.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	return days, nil
}

// LoadTiers reads a milestone tier list. An empty path returns nil, which
// the evaluator replaces with the built-in table.
func LoadTiers(path string) ([]models.MilestoneTier, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tiers file: %w", err)
	}

	var file struct {
		Tiers []models.MilestoneTier `yaml:"tiers"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tiers file: %w", err)
	}

	if len(file.Tiers) == 0 {
		return nil, fmt.Errorf("tiers file %s has no tiers", path)
	}

	return file.Tiers, nil
}
