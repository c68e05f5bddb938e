package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ProgressionRecord is the database row for one progression. Events are the
// JSON-encoded pitch-set sequence; primary-key order is load order, which
// keeps collection ids stable across restarts.
type ProgressionRecord struct {
	ID     uint   `gorm:"primarykey"`
	Events []byte `gorm:"type:jsonb;not null"`
}

// LoadDB loads the collection from a postgres database.
func LoadDB(dsn string) (*models.Collection, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to dataset database: %w", err)
	}

	if err := db.AutoMigrate(&ProgressionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate progression_records: %w", err)
	}

	var records []ProgressionRecord
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load progression records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	progressions := make([]models.Progression, 0, len(records))
	for _, record := range records {
		var events [][]int
		if err := json.Unmarshal(record.Events, &events); err != nil {
			return nil, fmt.Errorf("decode progression record %d: %w", record.ID, err)
		}
		p := make(models.Progression, len(events))
		for i, event := range events {
			p[i] = models.NewPitchSet(event...)
		}
		progressions = append(progressions, p)
	}

	logger.Info("Dataset loaded from database", logger.Fields{
		"progressions": len(progressions),
	})
	return models.NewCollection(progressions), nil
}
