package icongen

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// Target is one (pixel size, output filename) pair the generator
// produces. Generated icons are always square.
type Target struct {
	Size     int    `toml:"size"`
	Filename string `toml:"filename"`
}

// DefaultTargets returns the icon set a Chrome extension needs, in
// generation order. 256 and 440 are the Chrome Web Store listing and
// screenshot sizes; they are generated but not referenced from
// manifest.json.
func DefaultTargets() []Target {
	return []Target{
		{Size: 16, Filename: "icon16.png"},
		{Size: 32, Filename: "icon32.png"},
		{Size: 48, Filename: "icon48.png"},
		{Size: 128, Filename: "icon128.png"},
		{Size: 256, Filename: "icon256.png"},
		{Size: 440, Filename: "icon440.png"},
	}
}

// Validate checks that the target has a positive size and a bare,
// non-empty filename. Filenames with path separators are rejected so a
// target can never write outside the output directory.
func (t Target) Validate() error {
	if t.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "size must be positive, got %d", t.Size)
	}
	if t.Filename == "" {
		return errors.New(errors.ErrCodeInvalidTarget, "filename must not be empty")
	}
	if strings.ContainsRune(t.Filename, '/') || strings.ContainsRune(t.Filename, '\\') ||
		filepath.Base(t.Filename) != t.Filename {
		return errors.New(errors.ErrCodeInvalidTarget, "filename must not contain path separators: %s", t.Filename)
	}
	return nil
}
