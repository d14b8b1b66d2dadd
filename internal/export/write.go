package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes each assembled set as "<prefix>.json" inside dir and
// returns the written file paths in set order.
func Write(dir string, sets []Assembled) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(sets))
	for _, assembled := range sets {
		data, err := json.MarshalIndent(assembled.Set, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", assembled.Set.Prefix, err)
		}
		data = append(data, '\n')

		path := filepath.Join(dir, assembled.Set.Prefix+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
