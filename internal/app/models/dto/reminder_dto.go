package dto

// ReminderEntry is one student in the reminder list: a positive due plus the
// cooldown state of the send action.
type ReminderEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Standard  string  `json:"standard"`
	WhatsApp  string  `json:"whatsapp"`
	DueAmount float64 `json:"dueAmount"`

	Allowed bool `json:"allowed"`
	// HoursRemaining is the whole hours left in the cooldown window. Display
	// only; zero when Allowed.
	HoursRemaining int    `json:"hoursRemaining"`
	LastSent       *int64 `json:"lastReminderSent,omitempty"`
}

// SendReminderResponse carries the deep link that opens the pre-filled chat
type SendReminderResponse struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}

// ShareReceiptResponse carries the deep link for sharing a generated receipt
type ShareReceiptResponse struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}
