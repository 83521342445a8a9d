package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/dghein/fairway/config"
)

// OutputManager writes round logs as CSV next to a config snapshot.
// Returns from its methods are safe to ignore for a nil manager (output
// disabled).
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory. Returns nil if dir is
// empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the active configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRound writes holes.csv with per-hole results and round.csv with
// the summary record.
func (om *OutputManager) WriteRound(results []HoleResult, stats RoundStats) error {
	if om == nil {
		return nil
	}

	holesFile, err := os.Create(filepath.Join(om.dir, "holes.csv"))
	if err != nil {
		return fmt.Errorf("creating holes.csv: %w", err)
	}
	defer holesFile.Close()
	if err := gocsv.Marshal(results, holesFile); err != nil {
		return fmt.Errorf("writing holes.csv: %w", err)
	}

	roundFile, err := os.Create(filepath.Join(om.dir, "round.csv"))
	if err != nil {
		return fmt.Errorf("creating round.csv: %w", err)
	}
	defer roundFile.Close()
	if err := gocsv.Marshal([]RoundStats{stats}, roundFile); err != nil {
		return fmt.Errorf("writing round.csv: %w", err)
	}

	return nil
}

// Close releases resources. Present for symmetry with other managers;
// files are opened and closed per write.
func (om *OutputManager) Close() {}
