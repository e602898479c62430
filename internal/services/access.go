package services

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lockbox/gatebot/internal/store"
)

// Contact is one inbound contact-share: the sender's identity plus the
// identity embedded in the shared card.
type Contact struct {
	SenderID  int64
	ContactID int64
	Phone     string
	FullName  string
	Username  string
}

// Access turns a verified contact share into an issued access code.
type Access struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAccess(db *gorm.DB, log *zap.Logger) *Access {
	return &Access{db: db, log: log}
}

// Login runs the full access flow: reject cards that belong to someone
// else, then upsert the identity and append a login event in one
// transaction, then return the current code. An ownership mismatch
// leaves no trace in storage.
func (a *Access) Login(c Contact) (string, error) {
	if c.ContactID != c.SenderID {
		a.log.Warn("contact ownership mismatch",
			zap.Int64("sender", c.SenderID),
			zap.Int64("contact", c.ContactID))
		return "", ErrForeignContact
	}

	var code string
	err := a.db.Transaction(func(tx *gorm.DB) error {
		userID, err := store.NewUsers(tx).UpsertByTelegramID(
			c.SenderID, c.Phone, strings.TrimSpace(c.FullName), c.Username)
		if err != nil {
			return err
		}
		if err := store.NewLogins(tx).Record(userID, time.Now().UTC()); err != nil {
			return err
		}
		code, err = store.NewSettings(tx).AccessCode()
		return err
	})
	if err != nil {
		a.log.Error("login flow failed", zap.Int64("sender", c.SenderID), zap.Error(err))
		return "", err
	}
	if code == "" {
		a.log.Error("access code missing after bootstrap", zap.Int64("sender", c.SenderID))
		return "", ErrCodeUnset
	}

	a.log.Info("access code issued", zap.Int64("sender", c.SenderID))
	return code, nil
}
