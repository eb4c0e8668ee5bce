package dto

type SettingsOutput struct {
	PronunciationDisplay string
	ShowLatin            bool
	ShowCyrillic         bool
}

// UpdateSettingsInput leaves nil fields unchanged.
type UpdateSettingsInput struct {
	PronunciationDisplay *string
}
