package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cartscout/internal/models"
)

// timestampLayout matches the file naming of previous runs so results sort
// lexically by time
const timestampLayout = "20060102_150405"

// WriteComparison writes the comparison result as indented JSON into dir,
// creating dir if needed, and returns the path of the new file
func WriteComparison(dir string, cmp *models.Comparison) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal comparison: %w", err)
	}

	name := fmt.Sprintf("cart_%s.json", cmp.GeneratedAt.Format(timestampLayout))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ReadComparison loads a previously written comparison file, used by verify
func ReadComparison(path string) (*models.Comparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cmp models.Comparison
	if err := json.Unmarshal(data, &cmp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cmp, nil
}
