package in

import (
	"context"

	"sukhan/internal/modules/progress/dto"
)

type Usecase interface {
	MarkLessonComplete(ctx context.Context, lessonID string) error
	MarkReviewComplete(ctx context.Context, reviewID string) error
	MarkQuizComplete(ctx context.Context, quizID string) error
	IsLessonComplete(ctx context.Context, lessonID string) bool
	IsReviewComplete(ctx context.Context, reviewID string) bool
	IsQuizComplete(ctx context.Context, quizID string) bool
	GetUnitProgress(ctx context.Context, unitID string) (dto.UnitProgressOutput, error)
	GetUnitCheckpoints(ctx context.Context, unitID string) ([]dto.CheckpointOutput, error)
	GetCheckpoint(ctx context.Context, unitID, checkpointID string) (dto.CheckpointOutput, error)
	IsLessonUnlocked(ctx context.Context, unitID, lessonID string) (bool, error)
	IsReviewUnlocked(ctx context.Context, unitID, reviewID string) (bool, error)
	IsQuizUnlocked(ctx context.Context, unitID string) (bool, error)
	ResetProgress(ctx context.Context) error
}
