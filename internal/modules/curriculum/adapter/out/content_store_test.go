package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	curriculumout "sukhan/internal/modules/curriculum/adapter/out"
	"sukhan/internal/modules/curriculum/domain"
)

func TestFSContentStoreReadsUnitsInOrder(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"dictionary.json": {Data: []byte(`{"greetings":[{"tajik":"салом","english":"hello"}]}`)},
		"units/b.md":      {Data: []byte("---\nid: unit-b\ntitle: Second\norder: 2\nlessons:\n  - id: l-b1\n    words: [greetings_0]\n---\nBody of b.\n")},
		"units/a.md":      {Data: []byte("---\ntitle: First\norder: 1\ndescription: From frontmatter\nlessons:\n  - id: l-a1\n    words:\n      - {category: greetings, index: 0}\n---\nIgnored body.\n")},
		"units/README.txt": {Data: []byte("not a unit")},
	}
	store := curriculumout.NewFSContentStore(fsys)

	units, err := store.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].ID != "a" || units[0].Description != "From frontmatter" {
		t.Fatalf("unit without id should take its file name and keep its description, got %+v", units[0])
	}
	if units[1].ID != "unit-b" || units[1].Description != "Body of b." {
		t.Fatalf("body should become the description, got %+v", units[1])
	}
	if units[1].Lessons[0].Words[0] != (domain.WordRef{Category: "greetings", Index: 0}) {
		t.Fatalf("unexpected word ref %+v", units[1].Lessons[0].Words[0])
	}

	dict, err := store.LoadDictionary(context.Background())
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	if word, ok := dict.Lookup(domain.WordRef{Category: "greetings"}); !ok || word.English != "hello" {
		t.Fatalf("unexpected dictionary lookup %+v %v", word, ok)
	}
}

func TestFSContentStoreRejectsBrokenContent(t *testing.T) {
	t.Parallel()
	dup := fstest.MapFS{
		"units/a.md": {Data: []byte("---\nid: same\n---\n")},
		"units/b.md": {Data: []byte("---\nid: same\n---\n")},
	}
	if _, err := curriculumout.NewFSContentStore(dup).ListUnits(context.Background()); err == nil {
		t.Fatalf("duplicate unit ids must fail")
	}
	badLessons := fstest.MapFS{
		"units/a.md": {Data: []byte("---\nid: a\nlessons:\n  - id: x\n  - id: x\n---\n")},
	}
	if _, err := curriculumout.NewFSContentStore(badLessons).ListUnits(context.Background()); err == nil {
		t.Fatalf("duplicate lesson ids must fail")
	}
	if _, err := curriculumout.NewFSContentStore(fstest.MapFS{}).LoadDictionary(context.Background()); err == nil {
		t.Fatalf("missing dictionary must fail")
	}
}

func TestStarterContentIsConsistent(t *testing.T) {
	t.Parallel()
	store := curriculumout.NewStarterContentStore()
	units, err := store.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list starter units: %v", err)
	}
	dict, err := store.LoadDictionary(context.Background())
	if err != nil {
		t.Fatalf("load starter dictionary: %v", err)
	}
	if len(units) == 0 {
		t.Fatalf("starter pack must ship at least one unit")
	}
	for _, unit := range units {
		for _, lesson := range unit.Lessons {
			for _, ref := range lesson.Words {
				if _, ok := dict.Lookup(ref); !ok {
					t.Fatalf("starter lesson %s references unknown word %s", lesson.ID, ref.ID())
				}
			}
		}
	}
}

func TestDirContentStoreFallsBackToStarter(t *testing.T) {
	t.Parallel()
	_, fromDisk := curriculumout.NewDirContentStore(filepath.Join(t.TempDir(), "missing"))
	if fromDisk {
		t.Fatalf("missing content dir must fall back to the starter pack")
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "units"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "units", "u.md"), []byte("---\nid: local\n---\n"), 0o644); err != nil {
		t.Fatalf("write unit: %v", err)
	}
	store, fromDisk := curriculumout.NewDirContentStore(dir)
	if !fromDisk {
		t.Fatalf("existing content dir must be used")
	}
	units, err := store.ListUnits(context.Background())
	if err != nil || len(units) != 1 || units[0].ID != "local" {
		t.Fatalf("expected local unit, got %+v %v", units, err)
	}
}
