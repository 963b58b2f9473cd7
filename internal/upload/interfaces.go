package upload

import (
	"context"

	"github.com/kurochkinivan/docx_converter/internal/domain"
)

type Converter interface {
	Convert(ctx context.Context, doc *domain.Document) ([]byte, error)
}

type DownloadStore interface {
	Put(d *domain.Download) string
}

type ConversionUpdater interface {
	UpdateOrCreateConversion(ctx context.Context, conversion *domain.Conversion) error
}
