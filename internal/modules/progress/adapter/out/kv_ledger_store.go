package out

import (
	"context"

	"sukhan/internal/modules/progress/domain"
	progressout "sukhan/internal/modules/progress/port/out"
	"sukhan/internal/platform/kvstore"
)

const LedgerKey = "sukhan_progress"

type KVLedgerStore struct {
	store kvstore.Store
}

func NewKVLedgerStore(store kvstore.Store) progressout.LedgerStore {
	return &KVLedgerStore{store: store}
}

func (s *KVLedgerStore) Load(ctx context.Context) (domain.Ledger, error) {
	ledger := domain.NewLedger()
	if err := kvstore.GetJSON(ctx, s.store, LedgerKey, &ledger); err != nil {
		return domain.Ledger{}, err
	}
	return ledger.Normalize(), nil
}

func (s *KVLedgerStore) Save(ctx context.Context, ledger domain.Ledger) error {
	return kvstore.SetJSON(ctx, s.store, LedgerKey, ledger.Normalize())
}

func (s *KVLedgerStore) Reset(ctx context.Context) error {
	return s.store.Delete(ctx, LedgerKey)
}
