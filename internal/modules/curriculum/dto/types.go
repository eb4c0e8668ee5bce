package dto

import "sukhan/internal/modules/curriculum/domain"

// WordRef is the dictionary address shared with the other modules.
type WordRef = domain.WordRef

func ParseWordID(id string) (WordRef, error) {
	return domain.ParseWordID(id)
}

type UnitSummaryOutput struct {
	ID          string
	Title       string
	LessonCount int
	WordCount   int
}

type LessonOutput struct {
	ID          string
	Title       string
	Description string
	Words       []WordRef
}

type UnitOutput struct {
	ID          string
	Title       string
	Description string
	Lessons     []LessonOutput
}

type WordOutput struct {
	Ref                   WordRef
	WordID                string
	Tajik                 string
	English               string
	Russian               string
	PronunciationLatin    string
	PronunciationCyrillic string
}
