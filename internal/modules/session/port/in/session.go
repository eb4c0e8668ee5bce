package in

import (
	"context"

	"sukhan/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Rate(ctx context.Context, input dto.RateInput) (dto.RateOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.EndOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
	Cancel(ctx context.Context) error
}
