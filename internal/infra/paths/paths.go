package paths

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ResolveDir picks a usable directory: it first tries to create preferred and
// on failure falls back to ~/<fallbackName>, then ./<fallbackName>.
func ResolveDir(preferred, fallbackName string, logger *slog.Logger) (string, error) {
	if preferred != "" {
		err := os.MkdirAll(preferred, 0o755)
		if err == nil {
			return preferred, nil
		}
		logger.Warn("preferred directory unavailable", "dir", preferred, "err", err)
	}

	fallbackDir := "."
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		fallbackDir = home
	} else {
		logger.Warn("home dir unavailable, using current directory for fallback storage")
	}

	fallback := filepath.Join(fallbackDir, fallbackName)
	if err := os.MkdirAll(fallback, 0o755); err != nil {
		return "", fmt.Errorf("create fallback dir %s: %w", fallback, err)
	}

	logger.Warn("using fallback directory", "dir", fallback, "preferred", preferred)
	return fallback, nil
}
