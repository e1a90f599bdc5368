package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is a parsed level together with where it came from. ID is the file
// name without its extension.
type File struct {
	ID     string
	Path   string
	Parsed ParsedLevel
}

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadFile parses a single level file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("level: reading %s: %w", path, err)
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return File{}, fmt.Errorf("level: parsing %s: %w", path, err)
	}
	base := filepath.Base(path)
	return File{
		ID:     strings.TrimSuffix(base, filepath.Ext(base)),
		Path:   path,
		Parsed: parsed,
	}, nil
}

// LoadAll recursively loads every level file under the root, sorted by ID
// for deterministic ordering. Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]File, error) {
	var files []File

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".sok", ".lvl":
		default:
			return nil
		}
		file, loadErr := LoadFile(path)
		if loadErr != nil {
			return nil // skip unparsable files
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking %s: %w", l.Root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}
