package in

import (
	"context"

	sessiondto "sukhan/internal/modules/session/dto"
	sessionin "sukhan/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, unitID, checkpointID string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{UnitID: unitID, CheckpointID: checkpointID})
}

func (h CLIHandler) Rate(ctx context.Context, wordID, rating string) (sessiondto.RateOutput, error) {
	return h.usecase.Rate(ctx, sessiondto.RateInput{WordID: wordID, Rating: rating})
}

func (h CLIHandler) End(ctx context.Context, sessionID string, answers map[int]int) (sessiondto.EndOutput, error) {
	return h.usecase.End(ctx, sessiondto.EndInput{SessionID: sessionID, Answers: answers})
}

func (h CLIHandler) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Cancel(ctx context.Context) error {
	return h.usecase.Cancel(ctx)
}
