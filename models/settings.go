package models

// Theme is the side panel color scheme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Storage keys for each settings group.
const (
	KeyAppearance = "appearanceSettings"
	KeySystem     = "systemSettings"
	KeyUI         = "uiSettings"
)

type AppearanceSettings struct {
	Theme Theme `json:"theme" yaml:"theme"`
}

type SystemSettings struct {
	Notifications bool `json:"notifications" yaml:"notifications"`
	SyncInterval  int  `json:"syncInterval" yaml:"sync_interval"` // minutes
}

type UISettings struct {
	ActiveTab string `json:"activeTab" yaml:"active_tab"`
}

// Settings is the full set of user preferences.
type Settings struct {
	Appearance AppearanceSettings `json:"appearance" yaml:"appearance"`
	System     SystemSettings     `json:"system" yaml:"system"`
	UI         UISettings         `json:"ui" yaml:"ui"`
}

// DefaultSettings returns the preferences used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		Appearance: AppearanceSettings{Theme: ThemeSystem},
		System:     SystemSettings{Notifications: true, SyncInterval: 15},
		UI:         UISettings{ActiveTab: "home"},
	}
}
