package out

import (
	"context"

	"sukhan/internal/modules/progress/domain"
)

// LedgerStore owns the single completion record. Load returns
// apperrors.ErrNotFound when nothing was saved yet.
type LedgerStore interface {
	Load(ctx context.Context) (domain.Ledger, error)
	Save(ctx context.Context, ledger domain.Ledger) error
	Reset(ctx context.Context) error
}
