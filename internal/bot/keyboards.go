package bot

// Callback data for the admin panel buttons.
const (
	cbSetCode    = "admin_set_code"
	cbListUsers  = "admin_list_users"
	cbListLogins = "admin_list_logins"
)

func ContactKeyboard() any {
	return map[string]any{
		"keyboard": [][]map[string]any{
			{{"text": "Share my contact", "request_contact": true}},
		},
		"resize_keyboard":   true,
		"one_time_keyboard": true,
	}
}

func RemoveKeyboard() any {
	return map[string]any{"remove_keyboard": true}
}

func AdminKeyboard() any {
	return map[string]any{
		"inline_keyboard": [][]map[string]string{
			{{"text": "Change code", "callback_data": cbSetCode}},
			{{"text": "List users", "callback_data": cbListUsers}},
			{{"text": "Login history", "callback_data": cbListLogins}},
		},
	}
}
