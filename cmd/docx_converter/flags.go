package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/docx_converter/internal/app"
	"github.com/kurochkinivan/docx_converter/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "docx_converter",
		Usage:   "DOCX to Excel conversion web front-end",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "api-url",
			Aliases: []string{"a"},
			Usage:   "Set base `URL` of the conversion service",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CONVERTER_API_URL"),
				yaml.YAML("converter.api_url", altsrc.NewStringPtrSourcer(&config)),
			),
			Required:  true,
			Validator: validateAPIURL,
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum upload request size in bytes",
			Value:   32 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.max_upload_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: func(size int64) error {
				if size <= 0 {
					return fmt.Errorf("max upload size must be positive, got %d", size)
				}
				return nil
			},
		},
		&cli.DurationFlag{
			Name:    "download-ttl",
			Usage:   "Set how long a converted file waits to be downloaded",
			Value:     5 * time.Minute,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.download_ttl", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositiveDuration,
		},
		&cli.DurationFlag{
			Name:    "download-sweep-interval",
			Usage:   "Set expired downloads eviction interval",
			Value:     1 * time.Minute,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.download_sweep_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositiveDuration,
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_HOST"), yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_PORT"), yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username, conversion journal is disabled when empty",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "docx_converter",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_DBNAME"), yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, it bounds the whole conversion round trip",
			Value:   5 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}
	return nil
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url %q must use http or https", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("api url %q has no host", raw)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
