package kvstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "sukhan/internal/platform/errors"
	"sukhan/internal/platform/kvstore"
)

type record struct {
	Items []string `json:"items"`
}

func exerciseStore(t *testing.T, store kvstore.Store) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for missing key, got %v", err)
	}
	if err := kvstore.SetJSON(ctx, store, "sukhan_progress", record{Items: []string{"a"}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kvstore.SetJSON(ctx, store, "sukhan_progress", record{Items: []string{"a", "b"}}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got := record{}
	if err := kvstore.GetJSON(ctx, store, "sukhan_progress", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 2 || got.Items[1] != "b" {
		t.Fatalf("last write must win, got %+v", got)
	}
	if err := store.Set(ctx, "broken", []byte("{not json")); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	if err := kvstore.GetJSON(ctx, store, "broken", &got); err == nil || errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("malformed record must surface a decode error, got %v", err)
	}
	if err := store.Delete(ctx, "sukhan_progress"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "sukhan_progress"); err != nil {
		t.Fatalf("deleting twice must be a no-op: %v", err)
	}
	if _, err := store.Get(ctx, "sukhan_progress"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, kvstore.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "state")
	store := kvstore.NewFileStore(dir)
	exerciseStore(t, store)

	if err := store.Set(context.Background(), "sukhan_settings", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sukhan_settings.json")); err != nil {
		t.Fatalf("expected one file per key: %v", err)
	}
	if err := store.Set(context.Background(), "../escape", []byte(`{}`)); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("path-like keys must be rejected, got %v", err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), ".sukhan", "sukhan.db")
	store, err := kvstore.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	exerciseStore(t, store)
	if err := kvstore.SetJSON(context.Background(), store, "sukhan_word_progress", record{Items: []string{"greetings_0"}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := kvstore.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	defer reopened.Close()
	got := record{}
	if err := kvstore.GetJSON(context.Background(), reopened, "sukhan_word_progress", &got); err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0] != "greetings_0" {
		t.Fatalf("unexpected record after reopen: %+v", got)
	}
}
