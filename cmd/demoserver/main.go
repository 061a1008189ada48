// Command demoserver serves the scraping UI with canned API responses so
// the frontend can be shown without the full runtime installed.
// Usage: go run ./cmd/demoserver [flags]
// Default: port 8000, static files from the current directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/raysh454/scrapedemo/internal/config"
	"github.com/raysh454/scrapedemo/internal/demoserver"
	"github.com/raysh454/scrapedemo/internal/logging"
)

var Version string

func main() {
	app := newApp()
	if Version != "" {
		app.Version = Version
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Printf("exit error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "demoserver",
		Usage:           "serve the scraping UI with canned API responses",
		Version:         "local",
		HideHelpCommand: true,
		Description: `Every flag can also be set through the environment with the
SCRAPEDEMO_ prefix, e.g. SCRAPEDEMO_PORT=9000 or
SCRAPEDEMO_SCRAPE_DELAY=250ms. Flags win over the environment,
which wins over the config file.`,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional JSON config file",
			},
			&cli.StringFlag{
				Name:     "host",
				Usage:    "interface to bind, empty for all",
				Category: "http",
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"p"},
				Usage:    "port to listen on",
				Value:    8000,
				Category: "http",
			},
			&cli.PathFlag{
				Name:     "root",
				Usage:    "directory to serve static files from",
				Value:    ".",
				Category: "http",
			},
			&cli.IntFlag{
				Name:     "max-connections",
				Usage:    "connections handled at once; 1 keeps the server sequential",
				Value:    1,
				Category: "http",
			},
			&cli.DurationFlag{
				Name:     "scrape-delay",
				Usage:    "simulated scrape duration",
				Value:    time.Second,
				Category: "demo",
			},
			&cli.BoolFlag{
				Name:     "enable-downloads",
				Usage:    "mount POST /api/download/csv",
				Category: "demo",
			},
			&cli.BoolFlag{
				Name:     "enable-docs",
				Usage:    "mount the swagger UI under /swagger/",
				Category: "demo",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "production (JSON) or development (console)",
				Value: "production",
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx *cli.Context) error {
	cfg, err := config.Load(config.LoadOptions{
		FileName: ctx.Path("config"),
		Cli:      ctx,
	})
	if err != nil {
		return err
	}

	log, err := logging.NewZapLogger(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Component: "demoserver",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	server, err := demoserver.NewDemoServer(cfg.Config, log)
	if err != nil {
		return fmt.Errorf("creating demo server: %w", err)
	}

	printBanner(cfg.Config)

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(runCtx)
}

func printBanner(cfg demoserver.Config) {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	fmt.Println()
	fmt.Println("===========================================")
	fmt.Println("   Scrape Demo Server")
	fmt.Println("===========================================")
	fmt.Printf("Address:    http://%s:%d\n", host, cfg.Port)
	fmt.Printf("Started at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Println("This is a demo build that shows the frontend with")
	fmt.Println("canned preview and scrape responses. Nothing is")
	fmt.Println("actually fetched. Install the full runtime to")
	fmt.Println("scrape real pages.")
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop the server")
	fmt.Println()
}
