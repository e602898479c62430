package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lockbox/gatebot/internal/models"
)

// Users is the identity store: one row per distinct Telegram id.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// UpsertByTelegramID inserts a new user or refreshes the display fields
// of an existing one, as a single atomic statement on the telegram_id
// unique index. CreatedAt and the internal id never change after the
// first insert. Returns the internal id.
func (s *Users) UpsertByTelegramID(tgID int64, phone, fullName, username string) (uint, error) {
	rec := models.User{
		TelegramID: tgID,
		Phone:      phone,
		FullName:   fullName,
		Username:   username,
		CreatedAt:  time.Now().UTC(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "full_name", "username"}),
	}).Create(&rec).Error
	if err != nil {
		return 0, err
	}

	// Re-select: on the update path the insert id is not the row's id.
	var u models.User
	if err := s.db.Where("telegram_id = ?", tgID).First(&u).Error; err != nil {
		return 0, err
	}
	return u.ID, nil
}

// ListRecent returns up to limit users, most recently created first.
func (s *Users) ListRecent(limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC, id DESC").Limit(limit).Find(&users).Error
	return users, err
}
