package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/caching"
	"github.com/dtnitsch/algosensei/pkg/document"
	"github.com/dtnitsch/algosensei/pkg/fetcher"
)

// NewLogger builds the JSON stderr logger from --log-level and --quiet.
func NewLogger(c *cli.Context, cfg *models.Config) *slog.Logger {
	level := cfg.LogLevel
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	logLevel := ParseLevel(level)
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads --config and applies flag overrides.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("origin") {
		cfg.Origin = c.String("origin")
	}
	return cfg, nil
}

// LoadPage reads the page snapshot from --file, --url or stdin, in that
// order of preference.
func LoadPage(c *cli.Context, cfg *models.Config, logger *slog.Logger) (*document.Page, error) {
	pageURL := c.String("page-url")

	switch {
	case c.IsSet("file"):
		f, err := os.Open(c.String("file"))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", c.String("file"), err)
		}
		defer f.Close()
		return document.Load(f, pageURL)

	case c.IsSet("url"):
		rawURL := SanitizeURL(c.String("url"))
		if err := ValidateURL(rawURL); err != nil {
			return nil, err
		}
		f, err := NewFetcher(cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("fetching page", "url", rawURL)
		return f.GetPage(c.Context, rawURL)

	default:
		return document.Load(readerOrEmpty(c.App.Reader), pageURL)
	}
}

// NewFetcher wires the page cache into a fetcher when a cache dir is set.
func NewFetcher(cfg *models.Config, logger *slog.Logger) (*fetcher.Fetcher, error) {
	var cache *caching.Cache
	if cfg.Fetch.CacheDir != "" {
		ttl := cfg.Fetch.CacheTTL
		if ttl <= 0 {
			ttl = time.Hour
		}
		var err error
		cache, err = caching.NewCache(cfg.Fetch.CacheDir, ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize page cache: %w", err)
		}
	}
	return fetcher.NewFetcher(cfg.Fetch, cache, logger), nil
}

func readerOrEmpty(r io.Reader) io.Reader {
	if r == nil {
		return strings.NewReader("")
	}
	return r
}

// PrintOutput writes v to the app writer as YAML or JSON per --format.
func PrintOutput(c *cli.Context, v interface{}) error {
	var (
		out []byte
		err error
	)
	switch c.String("format") {
	case "json":
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	case "yaml", "":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", c.String("format"))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = c.App.Writer.Write(out)
	return err
}

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown link wrappers.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// "[click here](https://example.com)" -> "https://example.com"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ValidateURL rejects anything that is not an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("no URL provided")
	}
	if strings.Contains(rawURL, " ") {
		return fmt.Errorf("invalid URL %q: spaces must be encoded as %%20", rawURL)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", rawURL)
	}
	if parsed.Host == "" || strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return fmt.Errorf("invalid URL %q: bad host", rawURL)
	}
	return nil
}
