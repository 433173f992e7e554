package overrides

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/samber/oops"
)

// LoadOverlay reads an overlay file. The format follows the extension:
// .yaml, .yml and .json are read with ParseOverlay, .cue with
// ParseCUEOverlay.
func LoadOverlay(path string) (Overlay, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json", ".cue":
	default:
		return Overlay{}, oops.
			In("overrides").
			With("path", path).
			Errorf("unsupported overlay format %q (want .yaml, .yml, .json or .cue)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, oops.
			In("overrides").
			With("path", path).
			Wrapf(err, "read overlay")
	}
	log.WithFields(logger.Fields{
		"at":     "LoadOverlay",
		"path":   path,
		"format": ext,
		"size":   len(data),
	}).Debug("loading overlay file")

	var overlay Overlay
	if ext == ".cue" {
		overlay, err = ParseCUEOverlay(data, path)
	} else {
		overlay, err = ParseOverlay(data)
	}
	if err != nil {
		return Overlay{}, oops.
			In("overrides").
			With("path", path).
			Wrapf(err, "load overlay %s", filepath.Base(path))
	}
	return overlay, nil
}
