package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lockbox/gatebot/internal/models"
)

// ErrUnknownUser means a login was recorded against a user id that does
// not exist. Callers must upsert the user first, so hitting this is a
// bug upstream, not a user-facing condition.
var ErrUnknownUser = errors.New("unknown user")

// Logins is the append-only login ledger.
type Logins struct {
	db *gorm.DB
}

func NewLogins(db *gorm.DB) *Logins {
	return &Logins{db: db}
}

// Record appends one login event for an existing user.
func (s *Logins) Record(userID uint, at time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("record login for user %d: %w", userID, ErrUnknownUser)
		}
		return tx.Create(&models.LoginEvent{UserID: userID, At: at}).Error
	})
}

// LoginRow is one line of the login history, joined to the user it
// belongs to.
type LoginRow struct {
	At         time.Time
	TelegramID int64
	FullName   string
	Username   string
	Phone      string
}

// ListRecent returns up to limit login events, newest first.
func (s *Logins) ListRecent(limit int) ([]LoginRow, error) {
	var rows []LoginRow
	err := s.db.Table("login_events l").
		Select("l.at, u.telegram_id, u.full_name, u.username, u.phone").
		Joins("JOIN users u ON u.id = l.user_id").
		Order("l.at DESC, l.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
