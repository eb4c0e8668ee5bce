package dto

import (
	"time"

	curriculumdto "sukhan/internal/modules/curriculum/dto"
)

type RateInput struct {
	Ref    curriculumdto.WordRef
	Rating string
}

type WordStateOutput struct {
	WordID      string
	Rating      string
	Interval    int
	Ease        float64
	NextReview  *time.Time
	ReviewCount int
	LastSeen    time.Time
}
