package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/algosensei/models"
)

func TestDecide(t *testing.T) {
	cfg := models.DefaultConfig()

	tests := []struct {
		name   string
		url    string
		want   Options
		wantOK bool
	}{
		{"problem page", "https://leetcode.com/problems/two-sum/", Options{Enabled: true, Path: "index.html", Open: true}, true},
		{"explicit default port", "https://leetcode.com:443/problemset/", Options{Enabled: true, Path: "index.html", Open: true}, true},
		{"uppercase host", "https://LeetCode.com/", Options{Enabled: true, Path: "index.html", Open: true}, true},
		{"other site", "https://example.com/", Options{}, true},
		{"subdomain", "https://assets.leetcode.com/", Options{}, true},
		{"plain http", "http://leetcode.com/", Options{}, true},
		{"empty", "", Options{}, false},
		{"not a url", "::nope", Options{}, false},
		{"relative", "/problems/two-sum", Options{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decide(tt.url, cfg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_CustomOrigin(t *testing.T) {
	cfg := &models.Config{Origin: "https://leetcode.cn", PanelPath: "panel.html"}

	got, ok := Decide("https://leetcode.cn/problems/two-sum/", cfg)
	assert.True(t, ok)
	assert.Equal(t, Options{Enabled: true, Path: "panel.html", Open: true}, got)

	got, ok = Decide("https://leetcode.com/problems/two-sum/", cfg)
	assert.True(t, ok)
	assert.False(t, got.Enabled)
}

func TestDecide_NilConfig(t *testing.T) {
	got, ok := Decide("https://leetcode.com/", nil)
	assert.True(t, ok)
	assert.True(t, got.Enabled)
}

func TestOrigin(t *testing.T) {
	got, ok := Origin("http://localhost:8080/path?q=1")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8080", got)

	got, ok = Origin("http://example.com:80/")
	assert.True(t, ok)
	assert.Equal(t, "http://example.com", got)
}
