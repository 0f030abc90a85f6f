package models

// DefaultAcademyName is used until settings are saved for the first time.
const DefaultAcademyName = "My Academy"

// AcademySettings is the singleton settings record
type AcademySettings struct {
	AcademyName string `json:"academyName" example:"Sunrise Academy"`
}

// DefaultSettings returns the settings used when none are stored yet
func DefaultSettings() AcademySettings {
	return AcademySettings{AcademyName: DefaultAcademyName}
}
