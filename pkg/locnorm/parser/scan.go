package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanJSONFiles decodes every *.json file below root and returns the
// decode error of each file that failed, keyed by its slash-separated path
// relative to root.
func ScanJSONFiles(root string) (map[string]error, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.json", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list json files under %s: %w", root, err)
	}

	bad := make(map[string]error)
	for _, match := range matches {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(match)))
		if err != nil {
			bad[match] = err
			continue
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			bad[match] = err
		}
	}
	return bad, nil
}
