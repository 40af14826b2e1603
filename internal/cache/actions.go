package cache

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/common"
	"github.com/dtnitsch/algosensei/pkg/caching"
)

// ClearAction removes every page fetched into fetch.cache_dir.
func ClearAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg)

	if cfg.Fetch.CacheDir == "" {
		fmt.Fprintln(c.App.Writer, "No cache directory configured (fetch.cache_dir)")
		return nil
	}

	cache, err := caching.NewCache(cfg.Fetch.CacheDir, time.Hour)
	if err != nil {
		return err
	}
	if err := cache.Clear(); err != nil {
		return err
	}
	logger.Info("page cache cleared", "dir", cfg.Fetch.CacheDir)
	fmt.Fprintf(c.App.Writer, "Cleared %s\n", cfg.Fetch.CacheDir)
	return nil
}
