package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
)

// corpusExt is the extension of corpus text files.
const corpusExt = ".txt"

// LoadCorpus reads every text named by cfg.CorpusPaths.
//
// A directory contributes every *.txt file below it and a file path is taken
// as is. Exclude patterns are matched against the path relative to the
// directory (or the base name for explicit files). The title is the base name
// without extension; when two files share a title the first one wins.
// Texts are returned sorted by title.
func LoadCorpus(cfg *contract.Config) ([]schema.Text, error) {
	var texts []schema.Text
	seen := make(map[string]string)

	add := func(path, rel string) error {
		if contract.ShouldIgnore(rel, cfg.Excludes) {
			return nil
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if cfg.TitleFilter != "" && !strings.Contains(title, cfg.TitleFilter) {
			return nil
		}
		if prev, ok := seen[title]; ok {
			contract.LogWarn(fmt.Sprintf("Skipping %s", path), fmt.Errorf("title %q already loaded from %s", title, prev))
			return nil
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		seen[title] = path
		texts = append(texts, schema.Text{Title: title, Path: path, Body: string(body)})
		return nil
	}

	for _, root := range cfg.CorpusPaths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("corpus path %s: %w", root, err)
		}
		if !info.IsDir() {
			if err := add(root, filepath.Base(root)); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != corpusExt {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			return add(path, filepath.ToSlash(rel))
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	slices.SortFunc(texts, func(a, b schema.Text) int {
		return strings.Compare(a.Title, b.Title)
	})
	return texts, nil
}
