package in

import (
	"context"
	"fmt"

	"sukhan/internal/modules/progress/dto"
	progressin "sukhan/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Complete marks a checkpoint of the given kind (lesson, review or quiz).
func (h CLIHandler) Complete(ctx context.Context, kind, id string) error {
	switch kind {
	case "lesson":
		return h.usecase.MarkLessonComplete(ctx, id)
	case "review":
		return h.usecase.MarkReviewComplete(ctx, id)
	case "quiz":
		return h.usecase.MarkQuizComplete(ctx, id)
	default:
		return fmt.Errorf("unknown checkpoint kind %q: want lesson|review|quiz", kind)
	}
}

func (h CLIHandler) Checkpoints(ctx context.Context, unitID string) ([]dto.CheckpointOutput, error) {
	return h.usecase.GetUnitCheckpoints(ctx, unitID)
}

func (h CLIHandler) Checkpoint(ctx context.Context, unitID, checkpointID string) (dto.CheckpointOutput, error) {
	return h.usecase.GetCheckpoint(ctx, unitID, checkpointID)
}

func (h CLIHandler) UnitProgress(ctx context.Context, unitID string) (dto.UnitProgressOutput, error) {
	return h.usecase.GetUnitProgress(ctx, unitID)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.ResetProgress(ctx)
}
