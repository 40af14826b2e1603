// Package caching keeps fetched page HTML on disk for a limited time.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache provides a simple file-based cache with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// key hashes the page URL into a filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.html", hash)
}

// typeKey names the file holding the response Content-Type for url.
func (c *Cache) typeKey(url string) string {
	return strings.TrimSuffix(c.key(url), ".html") + ".ctype"
}

// Get returns the cached page and true when it exists and has not expired.
func (c *Cache) Get(url string) ([]byte, bool) {
	filePath := filepath.Join(c.path, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a page body.
func (c *Cache) Set(url string, data []byte) error {
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// GetPage returns a cached page together with the Content-Type it was
// served with ("" when none was stored).
func (c *Cache) GetPage(url string) ([]byte, string, bool) {
	data, ok := c.Get(url)
	if !ok {
		return nil, "", false
	}
	contentType, err := os.ReadFile(filepath.Join(c.path, c.typeKey(url)))
	if err != nil {
		return data, "", true
	}
	return data, string(contentType), true
}

// SetPage stores a page body and its Content-Type.
func (c *Cache) SetPage(url string, data []byte, contentType string) error {
	typePath := filepath.Join(c.path, c.typeKey(url))
	if contentType == "" {
		if err := os.Remove(typePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear cached content type: %w", err)
		}
	} else if err := os.WriteFile(typePath, []byte(contentType), 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return c.Set(url, data)
}

// Clear removes every cached page.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.path)
	if err != nil {
		return fmt.Errorf("failed to list cache: %w", err)
	}
	for _, e := range entries {
		if ext := filepath.Ext(e.Name()); ext != ".html" && ext != ".ctype" {
			continue
		}
		if err := os.Remove(filepath.Join(c.path, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}
