package out

import (
	"context"

	"sukhan/internal/modules/curriculum/domain"
)

// ContentStore reads the static curriculum and dictionary.
type ContentStore interface {
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	LoadDictionary(ctx context.Context) (domain.Dictionary, error)
}
