package section

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Omarhersan/leaseparse/model"
)

// WriteSections persists one text artifact per section into dir, creating it
// if needed. Artifacts are named by a zero-padded sequential index
// ("section_01.txt") and hold the header line, a blank line, and the body.
// Existing artifacts are overwritten.
func WriteSections(dir string, sections []model.Section) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("section: creating output directory: %w", err)
	}

	for i, sec := range sections {
		name := filepath.Join(dir, fmt.Sprintf("section_%02d.txt", i+1))
		content := sec.Header.String() + "\n\n" + sec.Body
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return fmt.Errorf("section: writing %s: %w", name, err)
		}
	}
	return nil
}
