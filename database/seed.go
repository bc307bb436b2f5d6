package database

import (
	"errors"
	"fmt"
	"time"

	"postapi/models"

	"gorm.io/gorm"
)

var ErrNothingToRevert = errors.New("no applied seeds to revert")

// Seed is a one-time data load with its reversal.
type Seed struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

type SeedRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SeedRecord) TableName() string {
	return "seed_records"
}

type SeedStatus struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// DummyPosts loads two sample posts. They carry no ispublished value, so the
// column default applies.
var DummyPosts = &Seed{
	Version: "20201006042751",
	Name:    "dummy-posts",
	Up: func(db *gorm.DB) error {
		posts := []models.Post{
			{
				Title:   "Hello World",
				Content: "Lorem ipsum dolor sit amet, consectetur adipisicing elit.",
				Tags:    "hello,world",
			},
			{
				Title:   "Lorem Ipsum",
				Content: "Quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
				Tags:    "lorem,ipsum",
			},
		}
		return db.Create(&posts).Error
	},
	// Reverting leaves the inserted posts in place.
	Down: func(db *gorm.DB) error {
		return nil
	},
}

// Seeder applies seeds at most once, tracking them in seed_records.
type Seeder struct {
	db    *gorm.DB
	seeds []*Seed
}

func NewSeeder(db *gorm.DB, seeds ...*Seed) *Seeder {
	return &Seeder{db: db, seeds: seeds}
}

func (s *Seeder) ensureRecordTable() error {
	return s.db.AutoMigrate(&SeedRecord{})
}

func (s *Seeder) appliedRecords() (map[string]SeedRecord, error) {
	if err := s.ensureRecordTable(); err != nil {
		return nil, err
	}

	var records []SeedRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]SeedRecord, len(records))
	for _, record := range records {
		applied[record.Version] = record
	}
	return applied, nil
}

// Up runs every pending seed in its own transaction and returns the names of
// the seeds it applied.
func (s *Seeder) Up() ([]string, error) {
	applied, err := s.appliedRecords()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, seed := range s.seeds {
		if _, ok := applied[seed.Version]; ok {
			continue
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := seed.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SeedRecord{
				Version:   seed.Version,
				Name:      seed.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return names, fmt.Errorf("apply seed %s: %w", seed.Name, err)
		}
		names = append(names, seed.Name)
	}

	return names, nil
}

// Down reverts the most recently applied seed and returns its name.
func (s *Seeder) Down() (string, error) {
	if err := s.ensureRecordTable(); err != nil {
		return "", err
	}

	var last SeedRecord
	if err := s.db.Order("applied_at DESC").First(&last).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNothingToRevert
		}
		return "", err
	}

	var target *Seed
	for _, seed := range s.seeds {
		if seed.Version == last.Version {
			target = seed
			break
		}
	}
	if target == nil {
		return "", fmt.Errorf("seed %s (%s) is not registered", last.Name, last.Version)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return err
		}
		return tx.Delete(&last).Error
	})
	if err != nil {
		return "", fmt.Errorf("revert seed %s: %w", target.Name, err)
	}

	return target.Name, nil
}

func (s *Seeder) Status() ([]SeedStatus, error) {
	applied, err := s.appliedRecords()
	if err != nil {
		return nil, err
	}

	statuses := make([]SeedStatus, 0, len(s.seeds))
	for _, seed := range s.seeds {
		status := SeedStatus{Version: seed.Version, Name: seed.Name}
		if record, ok := applied[seed.Version]; ok {
			appliedAt := record.AppliedAt
			status.Applied = true
			status.AppliedAt = &appliedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
