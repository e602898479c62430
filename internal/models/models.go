package models

import "time"

// User is one distinct Telegram identity that has verified a contact at
// least once. TelegramID is the stable external key; the display fields
// are refreshed on every contact share.
type User struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex;not null"`
	Phone      string
	FullName   string
	Username   string
	CreatedAt  time.Time
}

// LoginEvent records one successful contact verification. Rows are
// append-only and always reference an existing User.
type LoginEvent struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`
	User   User
	At     time.Time `gorm:"index;not null"`
}

// Setting is a single key/value pair. The access code lives under
// SettingAccessCode.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

const SettingAccessCode = "access_code"
