// Package storage persists benchmark runs to SQLite so successive runs on
// the same machine can be compared. It is opt-in: the default run touches
// no files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"symbench/internal/domain"
)

// BenchRun is one persisted harness execution.
type BenchRun struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Iterations int       `json:"iterations"`
	Seed       uint64    `json:"seed"`
	Target     string    `gorm:"index" json:"target"`
	PoolSize   int       `json:"pool_size"`

	OneToOneRegistryMS float64 `json:"one_to_one_registry_ms"`
	OneToOneDirectMS   float64 `json:"one_to_one_direct_ms"`
	OneToOneMatches    uint64  `json:"one_to_one_matches"`

	Rows []FanoutRow `gorm:"foreignKey:RunID" json:"rows"`
}

// FanoutRow is one sweep point of a persisted run.
type FanoutRow struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	RunID      uint    `gorm:"index" json:"run_id"`
	Fanout     int     `json:"fanout"`
	RegistryMS float64 `json:"registry_ms"`
	DirectMS   float64 `json:"direct_ms"`
	Matches    uint64  `json:"matches"`
	Speedup    string  `json:"speedup"` // decimal string, 4 places
	Winner     string  `json:"winner"`
}

// Store wraps the run-history database.
type Store struct {
	db *gorm.DB
}

// NewStore opens (or creates) the SQLite database at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create DB directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&BenchRun{}, &FanoutRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewRun assembles a BenchRun record from one harness execution.
func NewRun(iterations int, seed uint64, target string, poolSize int,
	oneToOne domain.ScenarioResult, sweep []domain.FanoutResult) *BenchRun {

	run := &BenchRun{
		Iterations:         iterations,
		Seed:               seed,
		Target:             target,
		PoolSize:           poolSize,
		OneToOneRegistryMS: oneToOne.RegistryMS,
		OneToOneDirectMS:   oneToOne.DirectMS,
		OneToOneMatches:    oneToOne.Matches,
	}
	for _, res := range sweep {
		run.Rows = append(run.Rows, FanoutRow{
			Fanout:     res.Fanout,
			RegistryMS: res.RegistryMS,
			DirectMS:   res.DirectMS,
			Matches:    res.Matches,
			Speedup:    res.Speedup().StringFixed(4),
			Winner:     res.Winner(),
		})
	}
	return run
}

// SaveRun persists a run together with its sweep rows.
func (s *Store) SaveRun(run *BenchRun) error {
	return s.db.Create(run).Error
}

// RecentRuns returns up to limit most recent runs, newest first, with
// their sweep rows preloaded.
func (s *Store) RecentRuns(limit int) ([]BenchRun, error) {
	var runs []BenchRun
	err := s.db.Preload("Rows").Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}
