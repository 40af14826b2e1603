package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/algosensei/internal/cache"
	"github.com/dtnitsch/algosensei/internal/message"
	"github.com/dtnitsch/algosensei/internal/panel"
	"github.com/dtnitsch/algosensei/internal/serve"
	"github.com/dtnitsch/algosensei/internal/settings"
	"github.com/dtnitsch/algosensei/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// inputFlags select where a page snapshot comes from. stdin is used when
// neither --file nor --url is given.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the page snapshot from `FILE`"},
		&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "fetch the page snapshot from `URL`"},
		&cli.StringFlag{Name: "page-url", Usage: "URL the snapshot was taken from (file/stdin input)"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "algosensei",
		Usage: "extract problem, console and editor content from coding-practice pages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"ALGOSENSEI_CONFIG"}, Usage: "YAML config `FILE`"},
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "db", Usage: "settings database `PATH`"},
			&cli.StringFlag{Name: "origin", Usage: "site origin the side panel is offered on"},
		},
		Commands: []*cli.Command{
			{
				Name:   "problem",
				Usage:  "print the problem, editor code, console data and error as text chunks",
				Flags:  inputFlags(),
				Action: message.ExtractAction,
			},
			{
				Name:   "code",
				Usage:  "print the current editor code and selected language",
				Flags:  inputFlags(),
				Action: message.ExtractAction,
			},
			{
				Name:  "page",
				Usage: "page utilities",
				Subcommands: []*cli.Command{
					{
						Name:   "html",
						Usage:  "print the full document HTML",
						Flags:  inputFlags(),
						Action: message.ExtractAction,
					},
					{
						Name:  "text",
						Usage: "print the visible body text",
						Flags: append(inputFlags(),
							&cli.BoolFlag{Name: "readable", Usage: "keep only the main article text"},
						),
						Action: message.ExtractAction,
					},
					{
						Name:   "info",
						Usage:  "print title, url and description",
						Flags:  inputFlags(),
						Action: message.ExtractAction,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "run as a native messaging host on stdin/stdout",
				Action: serve.ServeAction,
			},
			{
				Name:  "settings",
				Usage: "show or change side panel settings",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "print current settings",
						Action: settings.ShowAction,
					},
					{
						Name:  "set",
						Usage: "update one or more settings",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "theme", Usage: "system, light or dark"},
							&cli.BoolFlag{Name: "notifications", Usage: "enable notifications"},
							&cli.IntFlag{Name: "sync-interval", Usage: "sync interval in minutes"},
							&cli.StringFlag{Name: "active-tab", Usage: "tab shown when the panel opens"},
						},
						Action: settings.SetAction,
					},
					{
						Name:   "reset",
						Usage:  "restore default settings",
						Action: settings.ResetAction,
					},
				},
			},
			{
				Name:  "cache",
				Usage: "manage the fetched page cache",
				Subcommands: []*cli.Command{
					{
						Name:   "clear",
						Usage:  "remove every cached page",
						Action: cache.ClearAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a short usage guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
			{
				Name:  "panel",
				Usage: "decide whether the side panel is offered for a tab URL",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Required: true, Usage: "tab `URL`"},
				},
				Action: panel.DecideAction,
			},
		},
	}
}
