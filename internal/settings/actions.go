package settings

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/common"
	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/db"
	store "github.com/dtnitsch/algosensei/pkg/settings"
)

func openStore(c *cli.Context) (*store.Store, func(), error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	logger := common.NewLogger(c, cfg)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("settings database opened", "path", database.Path())
	return store.NewStore(database, logger), func() { _ = database.Close() }, nil
}

// ShowAction prints the effective settings.
func ShowAction(c *cli.Context) error {
	s, closeDB, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeDB()

	current, err := s.Load()
	if err != nil {
		return err
	}
	return common.PrintOutput(c, current)
}

// SetAction applies only the flags that were given and prints the result.
func SetAction(c *cli.Context) error {
	if c.NumFlags() == 0 {
		return cli.Exit("nothing to set; pass --theme, --notifications, --sync-interval or --active-tab", 1)
	}

	s, closeDB, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeDB()

	if c.IsSet("theme") {
		theme := models.Theme(c.String("theme"))
		if _, err := s.UpdateAppearance(store.AppearancePatch{Theme: &theme}); err != nil {
			return usageError(err)
		}
	}

	var sys store.SystemPatch
	if c.IsSet("notifications") {
		v := c.Bool("notifications")
		sys.Notifications = &v
	}
	if c.IsSet("sync-interval") {
		v := c.Int("sync-interval")
		sys.SyncInterval = &v
	}
	if sys.Notifications != nil || sys.SyncInterval != nil {
		if _, err := s.UpdateSystem(sys); err != nil {
			return usageError(err)
		}
	}

	if c.IsSet("active-tab") {
		tab := c.String("active-tab")
		if _, err := s.UpdateUI(store.UIPatch{ActiveTab: &tab}); err != nil {
			return err
		}
	}

	current, err := s.Load()
	if err != nil {
		return err
	}
	return common.PrintOutput(c, current)
}

// ResetAction clears stored settings and prints the defaults.
func ResetAction(c *cli.Context) error {
	s, closeDB, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeDB()

	defaults, err := s.Reset()
	if err != nil {
		return err
	}
	return common.PrintOutput(c, defaults)
}

func usageError(err error) error {
	if errors.Is(err, store.ErrInvalidTheme) || errors.Is(err, store.ErrInvalidSyncInterval) {
		return cli.Exit(err.Error(), 2)
	}
	return err
}
