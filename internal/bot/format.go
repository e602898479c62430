package bot

import (
	"fmt"
	"html"
	"strings"

	"github.com/lockbox/gatebot/internal/models"
	"github.com/lockbox/gatebot/internal/store"
)

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func atUsername(u string) string {
	if u == "" {
		return "—"
	}
	return "@" + u
}

// FormatUsers renders the recent-users listing shown to admins.
func FormatUsers(users []models.User) string {
	var b strings.Builder
	b.WriteString("Recent users:")
	for i, u := range users {
		fmt.Fprintf(&b, "\n%d. %s (%s), %s, id:%d",
			i+1,
			html.EscapeString(orDash(u.FullName)),
			html.EscapeString(atUsername(u.Username)),
			html.EscapeString(orDash(u.Phone)),
			u.TelegramID)
	}
	return b.String()
}

// FormatLogins renders the login-history listing shown to admins.
func FormatLogins(rows []store.LoginRow) string {
	var b strings.Builder
	b.WriteString("Recent logins (UTC):")
	for i, r := range rows {
		fmt.Fprintf(&b, "\n%d. %s — %s (%s), %s, id:%d",
			i+1,
			r.At.UTC().Format("2006-01-02 15:04:05"),
			html.EscapeString(orDash(r.FullName)),
			html.EscapeString(atUsername(r.Username)),
			html.EscapeString(orDash(r.Phone)),
			r.TelegramID)
	}
	return b.String()
}

// FullName joins the Telegram first/last name fields the way the client
// displays them.
func FullName(u *User) string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}
