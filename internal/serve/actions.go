package serve

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/common"
	"github.com/dtnitsch/algosensei/pkg/dispatch"
	"github.com/dtnitsch/algosensei/pkg/extractor"
	"github.com/dtnitsch/algosensei/pkg/locator"
)

// ServeAction runs the native messaging loop on stdin/stdout until the
// browser disconnects.
func ServeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg)

	ex := extractor.New(cfg.Selectors, locator.New(logger))
	host := NewHost(dispatch.New(ex, logger), logger)

	logger.Info("native messaging host started")
	if err := host.Serve(c.Context, c.App.Reader, c.App.Writer); err != nil {
		logger.Error("native messaging host stopped", "error", err)
		return cli.Exit(fmt.Sprintf("serve: %v", err), 1)
	}
	return nil
}
