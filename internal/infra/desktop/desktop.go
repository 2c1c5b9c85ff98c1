package desktop

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pkg/browser"

	"github.com/stratmaster/desktopd/internal/domain"
	"github.com/stratmaster/desktopd/internal/infra/paths"
)

// Desktop implements impls.Desktop by handing paths and URLs to the OS
// unchanged.
type Desktop struct {
	appIdentifier string
	logger        *slog.Logger

	goos          string
	openURL       func(string) error
	start         func(name string, args ...string) error
	userConfigDir func() (string, error)
}

func New(appIdentifier string, logger *slog.Logger) *Desktop {
	return &Desktop{
		appIdentifier: appIdentifier,
		logger:        logger,
		goos:          runtime.GOOS,
		openURL:       browser.OpenURL,
		start:         spawn,
		userConfigDir: os.UserConfigDir,
	}
}

// OpenURL opens url in the default browser.
func (d *Desktop) OpenURL(url string) error {
	d.logger.Info("opening external url", "url", url)
	if err := d.openURL(url); err != nil {
		return fmt.Errorf("failed to open url: %w", err)
	}
	return nil
}

// Reveal shows path in the platform file manager.
func (d *Desktop) Reveal(path string) error {
	d.logger.Info("showing file in folder", "path", path)

	if _, err := os.Stat(path); err != nil {
		return domain.ErrPathNotFound{Path: path}
	}

	name, args := revealCommand(d.goos, path)
	if err := d.start(name, args...); err != nil {
		return fmt.Errorf("failed to open file manager: %w", err)
	}
	return nil
}

// AppDataDir returns the per-user data directory of the application,
// creating it if needed.
func (d *Desktop) AppDataDir() (string, error) {
	preferred := ""
	if base, err := d.userConfigDir(); err == nil {
		preferred = filepath.Join(base, d.appIdentifier)
	} else {
		d.logger.Warn("user config dir unavailable", "err", err)
	}

	dir, err := paths.ResolveDir(preferred, "."+d.appIdentifier, d.logger)
	if err != nil {
		return "", fmt.Errorf("failed to get app data directory: %w", err)
	}
	return dir, nil
}

func revealCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{"/select,", path}
	case "darwin":
		return "open", []string{"-R", path}
	default:
		return "xdg-open", []string{filepath.Dir(path)}
	}
}

func spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
