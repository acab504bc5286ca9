package mock

import (
	"context"

	wxtouch "github.com/HeteroCat/wx-touch"
)

var _ wxtouch.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of wxtouch.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, e *wxtouch.Extraction) (string, error)
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, e *wxtouch.Extraction) (string, error) {
	return w.WriteExtractionFn(ctx, e)
}
