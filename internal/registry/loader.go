package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"irisd/internal/common/fsutil"
	"irisd/internal/model"
	"irisd/pkg/types"
)

// LoadDir scans a directory for *.json model artifacts and builds a registry.
// The ID is the file name without extension; Kind and Name come from the
// artifact header. Files whose header does not parse are skipped.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		p := filepath.Join(abs, name)
		kind, display, err := model.Peek(p)
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		if display == "" {
			display = id
		}
		models = append(models, types.Model{ID: id, Name: display, Path: p, Kind: kind})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

// Find returns the registry entry for id, if present.
func Find(models []types.Model, id string) (types.Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return types.Model{}, false
}
