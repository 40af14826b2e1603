package panel

import (
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/common"
	"github.com/dtnitsch/algosensei/pkg/panel"
)

type decision struct {
	URL     string         `json:"url" yaml:"url"`
	Origin  string         `json:"origin" yaml:"origin"`
	Options *panel.Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// DecideAction prints the side panel options for --url. No options are
// printed when the URL cannot be parsed.
func DecideAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg)

	out := decision{URL: c.String("url"), Origin: cfg.Origin}
	if opts, ok := panel.Decide(out.URL, cfg); ok {
		out.Options = &opts
	} else {
		logger.Warn("no panel decision for url", "url", out.URL)
	}
	return common.PrintOutput(c, out)
}
