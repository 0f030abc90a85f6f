package models

// Student defines one academy enrollee. The JSON shape is the persisted shape:
// the whole collection is stored as a single JSON array under one key.
type Student struct {
	ID       string `json:"id" example:"f4a7b4e0-8b69-4d5f-9b2a-1c2d3e4f5a6b"` // Unique identifier, assigned at creation
	Name     string `json:"name" example:"Asha Pawar"`                         // Display name
	WhatsApp string `json:"whatsapp" example:"919876543210"`                   // Contact number, used verbatim for messaging links
	Standard string `json:"standard" example:"7"`                              // Class label; numeric-looking but stored as a string

	TotalFee float64 `json:"totalFee" example:"5000"` // Agreed fee amount
	PaidFee  float64 `json:"paidFee" example:"2000"`  // Amount collected so far; may exceed TotalFee

	// LastReminderSent is the epoch-millisecond timestamp of the most recent
	// reminder dispatch. Nil means never sent. Overwritten on every send.
	LastReminderSent *int64 `json:"lastReminderSent,omitempty" example:"1756700000000"`

	CreatedAt int64 `json:"createdAt" example:"1756000000000"` // Epoch milliseconds, immutable
}

// Due returns the outstanding amount. Negative values mean overpayment and are
// legitimate.
func (s Student) Due() float64 {
	return s.TotalFee - s.PaidFee
}
