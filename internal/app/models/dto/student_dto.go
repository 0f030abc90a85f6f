package dto

// CreateStudentRequest carries the caller-supplied fields of a new student.
// ID and creation timestamp are assigned by the facade.
type CreateStudentRequest struct {
	Name     string  `json:"name" binding:"required"`
	WhatsApp string  `json:"whatsapp" binding:"required"`
	Standard string  `json:"standard" binding:"required"`
	TotalFee float64 `json:"totalFee" binding:"min=0"`
	PaidFee  float64 `json:"paidFee" binding:"min=0"`
}

// UpdateStudentRequest replaces an existing student record wholesale
type UpdateStudentRequest struct {
	Name     string  `json:"name" binding:"required"`
	WhatsApp string  `json:"whatsapp" binding:"required"`
	Standard string  `json:"standard" binding:"required"`
	TotalFee float64 `json:"totalFee" binding:"min=0"`
	PaidFee  float64 `json:"paidFee" binding:"min=0"`
	// LastReminderSent is preserved from the stored record when omitted.
	LastReminderSent *int64 `json:"lastReminderSent,omitempty"`
}

// DeleteByClassResponse reports how many records a bulk class delete removed
type DeleteByClassResponse struct {
	Removed int `json:"removed" example:"4"`
}
