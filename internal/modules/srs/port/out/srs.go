package out

import (
	"context"

	"sukhan/internal/modules/srs/domain"
)

// WordStateStore owns the single scheduler table record. Load returns
// apperrors.ErrNotFound when nothing was saved yet.
type WordStateStore interface {
	Load(ctx context.Context) (domain.Table, error)
	Save(ctx context.Context, table domain.Table) error
	Reset(ctx context.Context) error
}
