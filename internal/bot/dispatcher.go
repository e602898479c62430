package bot

import (
	"errors"
	"html"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/lockbox/gatebot/internal/services"
)

// Dispatcher routes inbound Telegram updates to the access and admin
// services and renders their outcomes back to the chat.
type Dispatcher struct {
	c         *Client
	access    *services.Access
	admin     *services.Admin
	publicURL string
	log       *zap.Logger
}

func NewDispatcher(c *Client, access *services.Access, admin *services.Admin, publicURL string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		c:         c,
		access:    access,
		admin:     admin,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log,
	}
}

func (d *Dispatcher) Handle(u *Update) {
	if u.Callback != nil {
		d.handleCallback(u.Callback)
		return
	}
	if u.Message == nil || u.Message.From == nil || u.Message.Chat == nil {
		return
	}
	m := u.Message
	chat := m.Chat.ID
	from := m.From

	if m.Contact != nil {
		d.handleContact(chat, from, m.Contact)
		return
	}

	text := strings.TrimSpace(m.Text)
	switch {
	case strings.HasPrefix(text, "/start"):
		_ = d.c.SendMessage(chat, "Please share your contact with the button below.", ContactKeyboard())
	case strings.HasPrefix(text, "/help"):
		_ = d.c.SendMessage(chat,
			"Commands:\n/start — share your contact\n/admin — admin panel (admins only)", nil)
	case strings.HasPrefix(text, "/admin"):
		d.handleAdminPanel(chat, from.ID)
	case strings.HasPrefix(text, "/setcode"):
		d.handleSetCode(chat, from.ID, strings.TrimPrefix(text, "/setcode"))
	default:
		d.handleFreeText(chat, from.ID, text)
	}
}

func (d *Dispatcher) handleContact(chat int64, from *User, contact *Contact) {
	code, err := d.access.Login(services.Contact{
		SenderID:  from.ID,
		ContactID: contact.UserID,
		Phone:     contact.PhoneNumber,
		FullName:  FullName(from),
		Username:  from.Username,
	})
	switch {
	case errors.Is(err, services.ErrForeignContact):
		_ = d.c.SendMessage(chat, "Please share your own contact with the button below.", ContactKeyboard())
	case err != nil:
		_ = d.c.SendMessage(chat, "Something went wrong. Please try again.", nil)
	default:
		_ = d.c.SendMessage(chat, "Your code: "+html.EscapeString(code), RemoveKeyboard())
		if d.publicURL != "" {
			photo := d.publicURL + "/qr/" + url.PathEscape(code) + ".png"
			if err := d.c.SendPhoto(chat, photo, "Scan to copy your code"); err != nil {
				d.log.Warn("qr photo send failed", zap.Error(err))
			}
		}
	}
}

func (d *Dispatcher) handleAdminPanel(chat, userID int64) {
	if !d.admin.IsAdmin(userID) {
		_ = d.c.SendMessage(chat, "Access denied.", nil)
		return
	}
	_ = d.c.SendMessage(chat, "Admin panel:", AdminKeyboard())
}

func (d *Dispatcher) handleSetCode(chat, userID int64, args string) {
	if strings.TrimSpace(args) == "" {
		if d.admin.IsAdmin(userID) {
			_ = d.c.SendMessage(chat, "Usage: /setcode &lt;new_code&gt;", nil)
		} else {
			_ = d.c.SendMessage(chat, "Access denied.", nil)
		}
		return
	}
	code, err := d.admin.SetCodeDirect(userID, args)
	switch {
	case errors.Is(err, services.ErrAccessDenied):
		_ = d.c.SendMessage(chat, "Access denied.", nil)
	case errors.Is(err, services.ErrEmptyCode):
		_ = d.c.SendMessage(chat, "The code cannot be empty.", nil)
	case err != nil:
		_ = d.c.SendMessage(chat, "Something went wrong. Please try again.", nil)
	default:
		_ = d.c.SendMessage(chat, "Code updated: "+html.EscapeString(code), nil)
	}
}

// handleFreeText feeds plain text into the pending code-change flow.
// Text from anyone who is not an admin awaiting a code is ignored; this
// is the shared fallback channel, not an error.
func (d *Dispatcher) handleFreeText(chat, userID int64, text string) {
	code, err := d.admin.SubmitNewCode(userID, text)
	switch {
	case errors.Is(err, services.ErrAccessDenied), errors.Is(err, services.ErrNotPending):
		return
	case errors.Is(err, services.ErrEmptyCode):
		_ = d.c.SendMessage(chat, "The code cannot be empty. Send a new code.", nil)
	case err != nil:
		_ = d.c.SendMessage(chat, "Could not save the code. Send it again.", nil)
	default:
		_ = d.c.SendMessage(chat, "Code updated: "+html.EscapeString(code), nil)
	}
}

func (d *Dispatcher) handleCallback(q *CallbackQuery) {
	if q.From == nil || q.Message == nil || q.Message.Chat == nil {
		return
	}
	chat := q.Message.Chat.ID
	userID := q.From.ID

	if !d.admin.IsAdmin(userID) {
		_ = d.c.AnswerCallback(q.ID, "Access denied.", true)
		return
	}
	_ = d.c.AnswerCallback(q.ID, "", false)

	switch q.Data {
	case cbSetCode:
		if err := d.admin.RequestCodeChange(userID); err != nil {
			_ = d.c.SendMessage(chat, "Something went wrong. Please try again.", nil)
			return
		}
		_ = d.c.SendMessage(chat, "Send the new code in one message.", nil)

	case cbListUsers:
		users, err := d.admin.RecentUsers(userID, services.DefaultListLimit)
		if err != nil {
			_ = d.c.SendMessage(chat, "Something went wrong. Please try again.", nil)
			return
		}
		if len(users) == 0 {
			_ = d.c.SendMessage(chat, "No users yet.", nil)
			return
		}
		_ = d.c.SendMessage(chat, FormatUsers(users), nil)

	case cbListLogins:
		rows, err := d.admin.RecentLogins(userID, services.DefaultListLimit)
		if err != nil {
			_ = d.c.SendMessage(chat, "Something went wrong. Please try again.", nil)
			return
		}
		if len(rows) == 0 {
			_ = d.c.SendMessage(chat, "No logins yet.", nil)
			return
		}
		_ = d.c.SendMessage(chat, FormatLogins(rows), nil)
	}
}
