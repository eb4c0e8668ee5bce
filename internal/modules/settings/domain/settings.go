package domain

import (
	"fmt"

	apperrors "sukhan/internal/platform/errors"
)

type PronunciationDisplay string

const (
	PronunciationBoth     PronunciationDisplay = "both"
	PronunciationCyrillic PronunciationDisplay = "cyrillic"
	PronunciationLatin    PronunciationDisplay = "latin"
	PronunciationNone     PronunciationDisplay = "none"
)

func (p PronunciationDisplay) IsValid() bool {
	switch p {
	case PronunciationBoth, PronunciationCyrillic, PronunciationLatin, PronunciationNone:
		return true
	}
	return false
}

func ParsePronunciationDisplay(s string) (PronunciationDisplay, error) {
	p := PronunciationDisplay(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: pronunciation display %q", apperrors.ErrInvalidInput, s)
	}
	return p, nil
}

func (p PronunciationDisplay) ShowLatin() bool {
	return p == PronunciationBoth || p == PronunciationLatin
}

func (p PronunciationDisplay) ShowCyrillic() bool {
	return p == PronunciationBoth || p == PronunciationCyrillic
}

type Settings struct {
	PronunciationDisplay PronunciationDisplay
}

func Defaults() Settings {
	return Settings{PronunciationDisplay: PronunciationBoth}
}

// Normalize replaces unknown values with their defaults.
func (s Settings) Normalize() Settings {
	if !s.PronunciationDisplay.IsValid() {
		s.PronunciationDisplay = Defaults().PronunciationDisplay
	}
	return s
}
