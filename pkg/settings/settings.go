// Package settings persists side-panel preferences with defaults.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/algosensei/models"
)

var (
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrInvalidSyncInterval = errors.New("sync interval must be a positive number of minutes")
)

// Backend is the key/value storage the Store writes through to.
type Backend interface {
	GetSettings(keys ...string) (map[string]string, error)
	PutSetting(key, value string) error
	ClearSettings() error
}

// AppearancePatch, SystemPatch and UIPatch carry partial updates; nil
// fields keep their current value.
type AppearancePatch struct {
	Theme *models.Theme
}

type SystemPatch struct {
	Notifications *bool
	SyncInterval  *int
}

type UIPatch struct {
	ActiveTab *string
}

// Store reads and writes the three settings groups.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger}
}

// Load returns stored settings on top of the defaults. A group that cannot
// be decoded or holds invalid values falls back to its default as a whole
// and is logged.
func (s *Store) Load() (models.Settings, error) {
	current := models.DefaultSettings()

	values, err := s.backend.GetSettings(models.KeyAppearance, models.KeySystem, models.KeyUI)
	if err != nil {
		return current, fmt.Errorf("failed to load settings: %w", err)
	}

	current.Appearance = loadGroup(s, values, models.KeyAppearance, current.Appearance, validateAppearance)
	current.System = loadGroup(s, values, models.KeySystem, current.System, validateSystem)
	current.UI = loadGroup(s, values, models.KeyUI, current.UI, nil)
	return current, nil
}

// loadGroup decodes the stored value for key over a copy of def and
// returns def unchanged when decoding or validation fails.
func loadGroup[T any](s *Store, values map[string]string, key string, def T, validate func(T) error) T {
	raw, ok := values[key]
	if !ok {
		return def
	}
	group := def
	if err := json.Unmarshal([]byte(raw), &group); err != nil {
		s.logger.Warn("ignoring unreadable settings group", "key", key, "error", err)
		return def
	}
	if validate != nil {
		if err := validate(group); err != nil {
			s.logger.Warn("ignoring invalid settings group", "key", key, "error", err)
			return def
		}
	}
	return group
}

func validateAppearance(a models.AppearanceSettings) error {
	if !validTheme(a.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, a.Theme)
	}
	return nil
}

func validateSystem(sys models.SystemSettings) error {
	if sys.SyncInterval <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSyncInterval, sys.SyncInterval)
	}
	return nil
}

// UpdateAppearance merges patch into the stored appearance settings.
func (s *Store) UpdateAppearance(patch AppearancePatch) (models.AppearanceSettings, error) {
	current, err := s.Load()
	if err != nil {
		return models.AppearanceSettings{}, err
	}
	updated := current.Appearance
	if patch.Theme != nil {
		if !validTheme(*patch.Theme) {
			return current.Appearance, fmt.Errorf("%w: %q", ErrInvalidTheme, *patch.Theme)
		}
		updated.Theme = *patch.Theme
	}
	return updated, s.save(models.KeyAppearance, updated)
}

// UpdateSystem merges patch into the stored system settings.
func (s *Store) UpdateSystem(patch SystemPatch) (models.SystemSettings, error) {
	current, err := s.Load()
	if err != nil {
		return models.SystemSettings{}, err
	}
	updated := current.System
	if patch.Notifications != nil {
		updated.Notifications = *patch.Notifications
	}
	if patch.SyncInterval != nil {
		if *patch.SyncInterval <= 0 {
			return current.System, fmt.Errorf("%w: %d", ErrInvalidSyncInterval, *patch.SyncInterval)
		}
		updated.SyncInterval = *patch.SyncInterval
	}
	return updated, s.save(models.KeySystem, updated)
}

// UpdateUI merges patch into the stored UI settings.
func (s *Store) UpdateUI(patch UIPatch) (models.UISettings, error) {
	current, err := s.Load()
	if err != nil {
		return models.UISettings{}, err
	}
	updated := current.UI
	if patch.ActiveTab != nil {
		updated.ActiveTab = *patch.ActiveTab
	}
	return updated, s.save(models.KeyUI, updated)
}

// Reset clears everything stored; Load returns the defaults afterwards.
func (s *Store) Reset() (models.Settings, error) {
	if err := s.backend.ClearSettings(); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to reset settings: %w", err)
	}
	return models.DefaultSettings(), nil
}

func (s *Store) save(key string, group interface{}) error {
	data, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.PutSetting(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	s.logger.Debug("settings saved", "key", key)
	return nil
}

func validTheme(t models.Theme) bool {
	switch t {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
		return true
	}
	return false
}
