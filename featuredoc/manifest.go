package featuredoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the manifest file name looked up by [LoadManifest].
const ManifestName = "Cargo.toml"

// manifestOrigName is the fallback manifest for packaged source trees.
// Published packages carry a normalized Cargo.toml stripped of comments;
// the original is renamed Cargo.toml.orig.
const manifestOrigName = "Cargo.toml.orig"

// LoadManifest reads the manifest in dir, falling back to Cargo.toml.orig
// when the primary manifest contains no doc markers and the original does.
// Read failures wrap [ErrReadManifest].
func LoadManifest(dir string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadManifest, err)
	}

	if hasDocMarkers(data) {
		return data, nil
	}

	orig, err := os.ReadFile(filepath.Join(dir, manifestOrigName))
	if err != nil {
		// No fallback available; let the extractor report the absence of
		// documented entries.
		return data, nil
	}

	if strings.Contains(string(orig), "##") || strings.Contains(string(orig), "#!") {
		return orig, nil
	}

	return data, nil
}

// hasDocMarkers reports whether manifest text contains any doc-comment
// marker at the start of a line.
func hasDocMarkers(data []byte) bool {
	s := string(data)

	return strings.Contains(s, "\n##") || strings.Contains(s, "\n#!") ||
		strings.HasPrefix(s, "##") || strings.HasPrefix(s, "#!")
}
