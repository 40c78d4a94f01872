package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-battle-overlay/internal/core/i18n"
	"github.com/penwyp/go-battle-overlay/internal/util"
)

// FileName is the config file inside the config directory
const FileName = "config.json"

// corruptSuffix marks the backup of an unreadable config
const corruptSuffix = ".corrupt"

// ErrNoConfigDir is returned when the platform has no per-user config location
var ErrNoConfigDir = errors.New("no user config directory available")

var errNotObject = errors.New("config is not a JSON object")

// DefaultDir is the per-user config directory for the application
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(base, AppName), nil
}

// Store loads and saves the config file in one directory
type Store struct {
	mu     sync.Mutex
	dir    string
	theme  ThemeDetector
	locale func() string
	logger util.LoggerInterface
}

// StoreOption customizes a Store
type StoreOption func(*Store)

// WithThemeDetector replaces terminal background detection
func WithThemeDetector(detect ThemeDetector) StoreOption {
	return func(s *Store) { s.theme = detect }
}

// WithLocaleDetector replaces environment locale detection
func WithLocaleDetector(detect func() string) StoreOption {
	return func(s *Store) { s.locale = detect }
}

// WithLogger routes store diagnostics to logger instead of the global one
func WithLogger(logger util.LoggerInterface) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a store rooted at dir. An empty dir resolves to DefaultDir.
func NewStore(dir string, opts ...StoreOption) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	s := &Store{
		dir:    util.ExpandPath(dir),
		theme:  DetectThemeMode,
		locale: i18n.DetectLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir is the config directory
func (s *Store) Dir() string {
	return s.dir
}

// Path is the config file path
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load returns the persisted config. A missing file is created from the
// initial defaults. An unreadable or unparsable file is moved aside to
// config.json.corrupt and replaced with fresh defaults; Load only fails
// when the directory cannot be created or the fresh file cannot be written.
func (s *Store) Load() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := util.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log().Warn("config unreadable, regenerating defaults",
				util.F("path", path), util.F("error", err.Error()))
		} else {
			s.log().Info("config not found, creating defaults", util.F("path", path))
		}
		return s.initialize()
	}

	cfg, err := s.decode(data)
	if err != nil {
		backup := path + corruptSuffix
		if werr := os.WriteFile(backup, data, 0644); werr != nil {
			s.log().Warn("failed to back up corrupt config", util.F("path", backup), util.F("error", werr.Error()))
		}
		s.log().Warn("config corrupt, regenerating defaults",
			util.F("path", path), util.F("backup", backup), util.F("error", err.Error()))
		return s.initialize()
	}

	s.log().Debug("config loaded", util.F("path", path), util.F("locale", cfg.Locale))
	return cfg, nil
}

// Save writes cfg atomically
func (s *Store) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(cfg)
}

// Reset discards the persisted config and writes fresh initial defaults
func (s *Store) Reset() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := util.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.initialize()
}

func (s *Store) decode(data []byte) (*Config, error) {
	locale := s.locale()
	cfg := Default(locale)
	// font roles missing from the file are filled by Normalize
	cfg.FontSizes = nil
	// null, arrays and scalars unmarshal cleanly but carry no settings
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	if err := sonic.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Normalize(locale)
	return cfg, nil
}

func (s *Store) initialize() (*Config, error) {
	cfg := Initial(s.locale(), s.theme())
	if err := s.write(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Store) write(cfg *Config) error {
	if err := util.EnsureDir(s.dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := sonic.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := util.WriteFileAtomic(s.Path(), data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	s.log().Debug("config saved", util.F("path", s.Path()))
	return nil
}

func (s *Store) log() util.LoggerInterface {
	if s.logger != nil {
		return s.logger
	}
	return util.Log().Named("config")
}
