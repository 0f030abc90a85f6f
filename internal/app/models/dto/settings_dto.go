package dto

// UpdateSettingsRequest replaces the stored settings record wholesale
type UpdateSettingsRequest struct {
	AcademyName string `json:"academyName" binding:"required"`
}
