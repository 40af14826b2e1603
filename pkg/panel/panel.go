// Package panel decides whether the side panel is offered for a tab.
package panel

import (
	"net/url"
	"strings"

	"github.com/dtnitsch/algosensei/models"
)

// Options mirrors the side panel options applied to a tab.
type Options struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Open    bool   `json:"open" yaml:"open"`
}

// Decide returns the panel options for tabURL. ok is false when the URL is
// empty or cannot be parsed, in which case the tab is left alone.
func Decide(tabURL string, cfg *models.Config) (Options, bool) {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if strings.TrimSpace(tabURL) == "" {
		return Options{}, false
	}
	tabOrigin, ok := Origin(tabURL)
	if !ok {
		return Options{}, false
	}

	want := cfg.Origin
	if want == "" {
		want = models.DefaultOrigin
	}
	allowed, ok := Origin(want)
	if !ok || tabOrigin != allowed {
		return Options{Enabled: false}, true
	}

	path := cfg.PanelPath
	if path == "" {
		path = models.DefaultPanelPath
	}
	return Options{Enabled: true, Path: path, Open: true}, true
}

// Origin returns scheme://host[:port] for raw, dropping default ports.
func Origin(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	if port != "" {
		host += ":" + port
	}
	return scheme + "://" + host, true
}
