package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/docx_converter/internal/config"
	v1 "github.com/kurochkinivan/docx_converter/internal/controller/http/v1"
	"github.com/kurochkinivan/docx_converter/internal/controller/http/web"
	"github.com/kurochkinivan/docx_converter/internal/converter"
	"github.com/kurochkinivan/docx_converter/internal/download"
	"github.com/kurochkinivan/docx_converter/internal/repository/postgresql"
	"github.com/kurochkinivan/docx_converter/internal/upload"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("converter_api_url", a.cfg.Converter.APIURL),
		slog.Int64("max_upload_size", a.cfg.App.MaxUploadSize),
		slog.Duration("download_ttl", a.cfg.App.DownloadTTL),
	)

	var (
		journal     upload.ConversionUpdater
		conversions v1.ConversionsRepository
	)

	if a.cfg.PostgreSQL.Enabled() {
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return fmt.Errorf("failed to create db connection: %w", err)
		}
		defer pool.Close()

		conversionsRepository := postgresql.NewConversionsRepository(pool)

		interrupted, err := conversionsRepository.FailProcessingConversions(ctx)
		if err != nil {
			return fmt.Errorf("failed to close interrupted conversions: %w", err)
		}
		if interrupted > 0 {
			a.log.InfoContext(ctx, "marked interrupted conversions as failed", slog.Int64("count", interrupted))
		}

		journal = conversionsRepository
		conversions = conversionsRepository
	} else {
		a.log.InfoContext(ctx, "postgresql is not configured, conversion journal disabled")
	}

	return a.serve(ctx, journal, conversions)
}

func (a *App) serve(
	ctx context.Context,
	journal upload.ConversionUpdater,
	conversions v1.ConversionsRepository,
) error {
	downloads := download.NewStore(a.log, a.cfg.App.DownloadTTL, a.cfg.App.DownloadSweepInterval)
	converterClient := converter.NewClient(a.log, a.cfg.Converter.APIURL, &http.Client{})
	uploadService := upload.NewService(a.log, converterClient, downloads, journal)

	handler, err := web.NewHandler(a.log, uploadService, downloads, a.cfg.App.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("failed to create web handler: %w", err)
	}

	server := web.NewServer(a.cfg.HTTP, handler, conversions)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "download store janitor started")
		return downloads.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
