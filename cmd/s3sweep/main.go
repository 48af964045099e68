package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/semmidev/s3sweep/internal/app"
	"github.com/semmidev/s3sweep/internal/config"
	"github.com/semmidev/s3sweep/internal/usecase"
)

func main() {
	cliApp := &cli.App{
		Name:      "s3sweep",
		Usage:     "delete objects in an S3 path that are older than a specified time",
		ArgsUsage: "<time-untouched> <path-spec> [<path-spec>...]",
		Description: "The time argument is a number with an optional single-character\n" +
			"suffix specifying the units: m for minutes, h for hours, d for days.\n" +
			"If no suffix is specified, time is in hours.\n\n" +
			"Suggested usage: run this as a cron job with the -q option:\n\n" +
			"   0 0 * * * s3sweep -q 30d s3://your-bucket/tmp/",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "don't print anything to stderr except errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print more messages to stderr",
			},
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "don't actually delete any objects; just log that we would",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "region to connect to S3 on (e.g. us-west-1)",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "S3 endpoint override, for S3-compatible stores",
			},
			&cli.StringFlag{
				Name:  "access-key",
				Usage: "static AWS access key (default: SDK credential chain)",
			},
			&cli.StringFlag{
				Name:  "secret-key",
				Usage: "static AWS secret key (default: SDK credential chain)",
			},
			&cli.StringFlag{
				Name:    "conf-path",
				Aliases: []string{"c"},
				Usage:   "path to an s3sweep config yaml",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "cron expression; keep running and sweep on this schedule",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("please specify time and one or more path specs")
	}

	threshold, err := usecase.ParseAge(c.Args().Get(0))
	if err != nil {
		cli.ShowAppHelp(c)
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	application, err := app.New(c.Context, cfg, app.Options{
		PathSpecs: c.Args().Slice()[1:],
		Threshold: threshold,
		DryRun:    c.Bool("test"),
		Quiet:     c.Bool("quiet"),
		Verbose:   c.Bool("verbose"),
	})
	if err != nil {
		return err
	}
	defer application.Shutdown()

	ctx, cancel := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return application.Run(ctx)
}

// loadConfig reads the config file when given and layers the connection
// flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("conf-path"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if v := c.String("region"); v != "" {
		cfg.S3.Region = v
	}
	if v := c.String("endpoint"); v != "" {
		cfg.S3.Endpoint = v
	}
	if v := c.String("access-key"); v != "" {
		cfg.S3.AccessKey = v
	}
	if v := c.String("secret-key"); v != "" {
		cfg.S3.SecretKey = v
	}
	if v := c.String("schedule"); v != "" {
		cfg.Schedule = v
	}

	return cfg, nil
}
