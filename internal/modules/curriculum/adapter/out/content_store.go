package out

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"sukhan/internal/modules/curriculum/domain"
	curriculumout "sukhan/internal/modules/curriculum/port/out"
	"sukhan/internal/platform/markdown"
)

const (
	dictionaryFile = "dictionary.json"
	unitsGlob      = "units/*.md"
)

//go:embed starter/dictionary.json starter/units/*.md
var starterContent embed.FS

// FSContentStore reads dictionary.json and units/*.md from a file system root.
type FSContentStore struct {
	fsys fs.FS
}

func NewFSContentStore(fsys fs.FS) curriculumout.ContentStore {
	return &FSContentStore{fsys: fsys}
}

// NewDirContentStore serves dir when it exists and the bundled starter pack otherwise.
func NewDirContentStore(dir string) (curriculumout.ContentStore, bool) {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return NewFSContentStore(os.DirFS(dir)), true
	}
	return NewStarterContentStore(), false
}

func NewStarterContentStore() curriculumout.ContentStore {
	sub, err := fs.Sub(starterContent, "starter")
	if err != nil {
		panic(fmt.Sprintf("starter content: %v", err))
	}
	return NewFSContentStore(sub)
}

func (s *FSContentStore) ListUnits(_ context.Context) ([]domain.Unit, error) {
	matches, err := fs.Glob(s.fsys, unitsGlob)
	if err != nil {
		return nil, fmt.Errorf("glob unit notes: %w", err)
	}
	units := make([]domain.Unit, 0, len(matches))
	seen := map[string]string{}
	for _, name := range matches {
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read unit note %s: %w", name, err)
		}
		unit := domain.Unit{}
		body, err := markdown.DecodeFrontmatter(string(content), &unit)
		if err != nil {
			return nil, fmt.Errorf("parse unit note %s: %w", name, err)
		}
		if unit.ID == "" {
			unit.ID = strings.TrimSuffix(path.Base(name), ".md")
		}
		if strings.TrimSpace(unit.Description) == "" {
			unit.Description = strings.TrimSpace(body)
		}
		if err := unit.Validate(); err != nil {
			return nil, fmt.Errorf("unit note %s: %w", name, err)
		}
		if other, dup := seen[unit.ID]; dup {
			return nil, fmt.Errorf("unit id %s declared by %s and %s", unit.ID, other, name)
		}
		seen[unit.ID] = name
		units = append(units, unit)
	}
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Order != units[j].Order {
			return units[i].Order < units[j].Order
		}
		return units[i].ID < units[j].ID
	})
	return units, nil
}

func (s *FSContentStore) LoadDictionary(_ context.Context) (domain.Dictionary, error) {
	payload, err := fs.ReadFile(s.fsys, dictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	dict := domain.Dictionary{}
	if err := json.Unmarshal(payload, &dict); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return dict, nil
}
