package upload

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/docx_converter/internal/converter"
	"github.com/kurochkinivan/docx_converter/internal/domain"
)

type Service struct {
	log       *slog.Logger
	converter Converter
	downloads DownloadStore
	journal   ConversionUpdater
}

// NewService builds the upload flow. journal may be nil, then attempts are not recorded.
func NewService(log *slog.Logger, converter Converter, downloads DownloadStore, journal ConversionUpdater) *Service {
	return &Service{
		log:       log,
		converter: converter,
		downloads: downloads,
		journal:   journal,
	}
}

// Submit sends the selected document for conversion and writes the outcome into the form.
func (s *Service) Submit(ctx context.Context, form *domain.UploadForm) {
	form.DownloadToken = ""

	doc := form.Selected()
	if doc == nil {
		form.StatusMessage = domain.MessageNoFile
		return
	}

	log := s.log.With(
		slog.String("filename", doc.Name),
		slog.Int64("size", doc.Size()),
	)

	conversion := &domain.Conversion{
		ID:        uuid.NewString(),
		Filename:  doc.Name,
		SizeBytes: doc.Size(),
		Status:    domain.StatusProcessing,
		CreatedAt: time.Now(),
	}
	s.record(ctx, log, conversion)

	content, err := s.converter.Convert(ctx, doc)
	if err != nil {
		log.InfoContext(ctx, "conversion failed", slog.String("err", err.Error()))

		form.StatusMessage = messageFor(err)
		s.finish(ctx, log, conversion, domain.StatusError, err.Error())
		return
	}

	form.DownloadToken = s.downloads.Put(domain.NewSpreadsheetDownload(content))
	form.StatusMessage = domain.MessageConverted

	log.InfoContext(ctx, "document converted", slog.Int("result_size", len(content)))

	s.finish(ctx, log, conversion, domain.StatusDone, "")
}

func messageFor(err error) string {
	var serverErr *converter.ServerError
	switch {
	case errors.As(err, &serverErr):
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return domain.MessageConversionFailed

	default:
		return domain.MessageUploadError
	}
}

func (s *Service) finish(ctx context.Context, log *slog.Logger, c *domain.Conversion, status domain.Status, message string) {
	now := time.Now()
	c.Status = status
	c.Message = message
	c.FinishedAt = &now

	s.record(ctx, log, c)
}

func (s *Service) record(ctx context.Context, log *slog.Logger, c *domain.Conversion) {
	if s.journal == nil {
		return
	}

	// the journal entry must be written even if the browser went away
	if err := s.journal.UpdateOrCreateConversion(context.WithoutCancel(ctx), c); err != nil {
		log.ErrorContext(ctx, "failed to record conversion",
			slog.String("conversion_id", c.ID),
			slog.String("err", err.Error()),
		)
	}
}
