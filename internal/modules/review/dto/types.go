package dto

import curriculumdto "sukhan/internal/modules/curriculum/dto"

type WordSetOutput struct {
	UnitID string
	Words  []curriculumdto.WordOutput
}

// QuizOutput pairs the quiz words with their English translations in
// shuffled order.
type QuizOutput struct {
	UnitID       string
	Words        []curriculumdto.WordOutput
	Translations []string
}

// GradeInput maps a word index to the index of the translation picked for it.
type GradeInput struct {
	Words        []curriculumdto.WordRef
	Translations []string
	Answers      map[int]int
}

type GradeOutput struct {
	Correct int
	Total   int
	Ratio   float64
	Passed  bool
}
