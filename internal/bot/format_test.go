package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/lockbox/gatebot/internal/models"
	"github.com/lockbox/gatebot/internal/store"
)

func TestFormatUsers(t *testing.T) {
	users := []models.User{
		{TelegramID: 42, FullName: "Alice", Username: "alice", Phone: "+100"},
		{TelegramID: 7, FullName: "", Username: "", Phone: ""},
	}
	out := FormatUsers(users)

	if !strings.HasPrefix(out, "Recent users:") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "1. Alice (@alice), +100, id:42") {
		t.Errorf("first row wrong:\n%s", out)
	}
	if !strings.Contains(out, "2. — (—), —, id:7") {
		t.Errorf("empty fields should render as dashes:\n%s", out)
	}
}

func TestFormatUsers_EscapesHTML(t *testing.T) {
	out := FormatUsers([]models.User{{TelegramID: 1, FullName: "<b>bold</b>"}})
	if strings.Contains(out, "<b>") {
		t.Errorf("name not escaped:\n%s", out)
	}
}

func TestFormatLogins(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	rows := []store.LoginRow{
		{At: at, TelegramID: 42, FullName: "Alice", Username: "alice", Phone: "+100"},
	}
	out := FormatLogins(rows)

	if !strings.HasPrefix(out, "Recent logins (UTC):") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "1. 2026-03-01 12:30:00 — Alice (@alice), +100, id:42") {
		t.Errorf("row wrong:\n%s", out)
	}
}

func TestFullName(t *testing.T) {
	cases := []struct {
		u    *User
		want string
	}{
		{nil, ""},
		{&User{FirstName: "Alice"}, "Alice"},
		{&User{FirstName: " Alice ", LastName: " Smith "}, "Alice Smith"},
		{&User{LastName: "Smith"}, "Smith"},
	}
	for _, c := range cases {
		if got := FullName(c.u); got != c.want {
			t.Errorf("FullName(%+v) = %q, want %q", c.u, got, c.want)
		}
	}
}
