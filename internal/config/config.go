package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stratmaster/desktopd/internal/domain"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Config holds the desktop backend configuration. Values come from an
// optional YAML settings file, then STRATMASTER_* environment variables,
// then command line flags.
type Config struct {
	// Listen is the loopback address of the command API.
	Listen string `yaml:"listen"`

	// APIBaseURL is the initial base URL of the primary StratMaster API.
	APIBaseURL string `yaml:"api_base_url"`

	// ProbeTimeout bounds every outbound health request.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// AuthToken, when set, must be sent by the shell in X-Desktop-Token.
	AuthToken string `yaml:"auth_token"`

	// LogDir is the directory for log files. Empty logs to stderr only.
	LogDir string `yaml:"log_dir"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`

	// AppIdentifier names the per-user application data directory.
	AppIdentifier string `yaml:"app_identifier"`

	Theme             string                 `yaml:"theme"`
	AutoStartServices bool                   `yaml:"auto_start_services"`
	HardwareProfile   *domain.CapabilityTier `yaml:"hardware_profile"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:        "127.0.0.1:1421",
		APIBaseURL:    "http://localhost:8080",
		ProbeTimeout:  5 * time.Second,
		AppIdentifier: "stratmaster-desktop",
		Theme:         "auto",
	}
}

// Load reads the settings file at path (if it exists) and applies
// environment overrides. An empty path falls back to STRATMASTER_CONFIG.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("STRATMASTER_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("STRATMASTER_LISTEN"); v != "" {
		cfg.Listen = v
	}

	if v := os.Getenv("STRATMASTER_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}

	if v := os.Getenv("STRATMASTER_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, domain.ErrConfiguration{Field: "STRATMASTER_PROBE_TIMEOUT", Err: err}
		}
		cfg.ProbeTimeout = d
	}

	if v := os.Getenv("STRATMASTER_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = strings.TrimSpace(v)
	}

	if v := os.Getenv("STRATMASTER_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	if v := os.Getenv("STRATMASTER_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, domain.ErrConfiguration{Field: "STRATMASTER_DEBUG", Err: err}
		}
		cfg.Debug = debug
	}

	if v := os.Getenv("STRATMASTER_APP_IDENTIFIER"); v != "" {
		cfg.AppIdentifier = v
	}

	if cfg.ProbeTimeout <= 0 {
		return nil, domain.ErrConfiguration{Field: "probe_timeout", Err: errors.New("must be positive")}
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return domain.ErrConfiguration{Field: "config", Err: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return domain.ErrConfiguration{Field: "config", Err: fmt.Errorf("parse %s: %w", path, err)}
	}
	return nil
}

// Settings returns the user-facing part of the configuration.
func (c *Config) Settings(apiBaseURL string) domain.Settings {
	return domain.Settings{
		APIBaseURL:        apiBaseURL,
		AutoStartServices: c.AutoStartServices,
		Theme:             c.Theme,
		HardwareProfile:   c.HardwareProfile,
	}
}

// NewLogger creates a structured JSON logger writing to stderr and, when
// LogDir is set, to <LogDir>/<name>.log.
func NewLogger(cfg *Config, name string) (*slog.Logger, error) {
	var out io.Writer = os.Stderr

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}

		logPath := filepath.Join(cfg.LogDir, name+".log")
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logPath, err)
		}
		out = io.MultiWriter(os.Stderr, file)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}
