package message

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/common"
	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/dispatch"
	"github.com/dtnitsch/algosensei/pkg/extractor"
	"github.com/dtnitsch/algosensei/pkg/locator"
)

// commandTypes maps CLI command names onto message type tags.
var commandTypes = map[string]models.MessageType{
	"problem": models.TypeGetProblem,
	"code":    models.TypeGetCodeComplexity,
	"html":    models.TypeGetPageHTML,
	"text":    models.TypeGetPageText,
	"info":    models.TypeGetPageInfo,
}

// TypeForCommand returns the message type a command name stands for.
func TypeForCommand(name string) (models.MessageType, bool) {
	t, ok := commandTypes[name]
	return t, ok
}

// ExtractAction loads a page snapshot and answers the message type named by
// the invoked command, the same way the native host would.
func ExtractAction(c *cli.Context) error {
	msgType, ok := TypeForCommand(c.Command.Name)
	if !ok {
		return fmt.Errorf("unknown extraction command: %s", c.Command.Name)
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg)

	page, err := common.LoadPage(c, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}

	ex := extractor.New(cfg.Selectors, locator.New(logger))

	if msgType == models.TypeGetPageText && c.Bool("readable") {
		text, err := ex.ReadableText(page.Root(), page.URL)
		if err != nil {
			return fmt.Errorf("failed to extract readable text: %w", err)
		}
		return common.PrintOutput(c, models.Response{Text: text})
	}

	d := dispatch.New(ex, logger)
	resp, ok := d.Handle(page, models.Request{Type: msgType, URL: page.URL})
	if !ok {
		resp = models.NewUnknownTypeResponse(msgType)
	}
	return common.PrintOutput(c, resp)
}
