package services

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lockbox/gatebot/internal/models"
	"github.com/lockbox/gatebot/internal/store"
)

// DefaultListLimit caps the users/logins listings shown to admins.
const DefaultListLimit = 50

// Admin gates every code-rotation and audit operation behind a fixed
// allowlist and owns the "awaiting new code" conversational state.
type Admin struct {
	users    *store.Users
	logins   *store.Logins
	settings *store.Settings
	allowed  map[int64]struct{}
	pending  *pendingSet
	log      *zap.Logger
}

func NewAdmin(db *gorm.DB, adminIDs []int64, log *zap.Logger) *Admin {
	allowed := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		allowed[id] = struct{}{}
	}
	return &Admin{
		users:    store.NewUsers(db),
		logins:   store.NewLogins(db),
		settings: store.NewSettings(db),
		allowed:  allowed,
		pending:  newPendingSet(),
		log:      log,
	}
}

func (a *Admin) IsAdmin(id int64) bool {
	_, ok := a.allowed[id]
	return ok
}

// AwaitingCode reports whether the admin's next message should be taken
// as the new access code.
func (a *Admin) AwaitingCode(id int64) bool {
	return a.pending.Contains(id)
}

// RequestCodeChange marks the admin as awaiting a new code. The code
// itself does not change until the admin sends it.
func (a *Admin) RequestCodeChange(adminID int64) error {
	if !a.IsAdmin(adminID) {
		return ErrAccessDenied
	}
	a.pending.Add(adminID)
	return nil
}

// SubmitNewCode consumes a pending code change. An empty submission
// keeps the admin pending so they can retry, as does a storage failure.
// Returns the code that was set.
func (a *Admin) SubmitNewCode(adminID int64, text string) (string, error) {
	if !a.IsAdmin(adminID) {
		return "", ErrAccessDenied
	}
	if !a.pending.Contains(adminID) {
		return "", ErrNotPending
	}
	code := strings.TrimSpace(text)
	if code == "" {
		return "", ErrEmptyCode
	}
	if err := a.settings.SetAccessCode(code); err != nil {
		return "", err
	}
	a.pending.Remove(adminID)
	a.log.Info("access code rotated", zap.Int64("admin", adminID))
	return code, nil
}

// SetCodeDirect rotates the code from an inline command argument,
// bypassing the pending flow entirely.
func (a *Admin) SetCodeDirect(adminID int64, text string) (string, error) {
	if !a.IsAdmin(adminID) {
		return "", ErrAccessDenied
	}
	code := strings.TrimSpace(text)
	if code == "" {
		return "", ErrEmptyCode
	}
	if err := a.settings.SetAccessCode(code); err != nil {
		return "", err
	}
	a.log.Info("access code rotated", zap.Int64("admin", adminID))
	return code, nil
}

// RecentUsers lists the newest registered users for audit.
func (a *Admin) RecentUsers(adminID int64, limit int) ([]models.User, error) {
	if !a.IsAdmin(adminID) {
		return nil, ErrAccessDenied
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return a.users.ListRecent(limit)
}

// RecentLogins lists the newest login events for audit.
func (a *Admin) RecentLogins(adminID int64, limit int) ([]store.LoginRow, error) {
	if !a.IsAdmin(adminID) {
		return nil, ErrAccessDenied
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return a.logins.ListRecent(limit)
}
