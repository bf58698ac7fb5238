package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBoardSeed   = "board.seed"
	KeyCatalogPath = "catalog.path"
	KeyExportDir   = "export.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Board: domain.BoardSettings{
			Seed: s.getSeed(defaults.Board.Seed),
		},
		Catalog: domain.CatalogSettings{
			Path: s.configStore.GetString(KeyCatalogPath), // No default - empty means built-in
		},
		Export: domain.ExportSettings{
			Dir: s.getString(KeyExportDir, defaults.Export.Dir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings.Board.Seed < 0 {
		return fmt.Errorf("save %s: %w: seed must not be negative", KeyBoardSeed, domain.ErrInvalidSetting)
	}
	if err := s.configStore.Set(KeyBoardSeed, settings.Board.Seed); err != nil {
		return fmt.Errorf("save board seed: %w", err)
	}
	if err := s.configStore.Set(KeyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	if err := s.configStore.Set(KeyExportDir, settings.Export.Dir); err != nil {
		return fmt.Errorf("save export dir: %w", err)
	}
	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyBoardSeed:
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil || seed < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer, got %q",
				domain.ErrInvalidSetting, key, value)
		}
		settings.Board.Seed = seed
	case KeyCatalogPath:
		settings.Catalog.Path = value
	case KeyExportDir:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidSetting, key)
		}
		settings.Export.Dir = value
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	return s.Save(settings)
}

// Keys returns every settable key.
func (s *SettingsService) Keys() []string {
	return []string{KeyBoardSeed, KeyCatalogPath, KeyExportDir}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeed(defaultVal int64) int64 {
	val := s.configStore.GetInt(KeyBoardSeed)
	if val <= 0 {
		return defaultVal
	}
	return int64(val)
}
