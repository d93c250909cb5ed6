package history

import (
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/msoltanov/pdf-shrinker/internal/compression"
)

// Store persists compression run records in a local sqlite database.
type Store struct {
	db *gorm.DB
}

// NewStore opens (or creates) the history database at dbPath and migrates
// the schema.
func NewStore(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save records a completed run and returns its generated ID.
func (s *Store) Save(result compression.Result) (string, error) {
	rec := Record{
		ID:           uuid.New().String(),
		InputPath:    result.InputPath,
		OutputPath:   result.OutputPath,
		Level:        result.Level,
		InputSize:    result.InputSize,
		OutputSize:   result.OutputSize,
		Ratio:        result.Ratio,
		PercentSaved: result.PercentSaved,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	var records []Record
	err := s.db.Order("created_at desc").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
