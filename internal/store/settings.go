package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lockbox/gatebot/internal/models"
)

// Settings holds the single mutable access code under a fixed key.
type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// EnsureDefault seeds the access code if no value exists yet. Safe to
// call on every startup: once a code is set, later defaults are ignored.
func (s *Settings) EnsureDefault(code string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&models.Setting{Key: models.SettingAccessCode, Value: code}).Error
}

// AccessCode returns the current code, or "" if the store was never
// seeded.
func (s *Settings) AccessCode() (string, error) {
	var row models.Setting
	err := s.db.Where("key = ?", models.SettingAccessCode).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

// SetAccessCode overwrites the current code unconditionally.
func (s *Settings) SetAccessCode(code string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: models.SettingAccessCode, Value: code}).Error
}
