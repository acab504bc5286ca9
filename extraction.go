package wxtouch

import (
	"context"
	"time"
)

// Extraction is an article converted to Markdown.
type Extraction struct {
	URL         string    `json:"url"`
	Markdown    string    `json:"markdown"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	return nil
}

// ExtractionWriter stores extracted articles outside the process.
type ExtractionWriter interface {
	// WriteExtraction stores e and returns where it was written.
	WriteExtraction(ctx context.Context, e *Extraction) (string, error)
}
