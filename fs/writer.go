// Package fs stores extracted articles as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// ArticlePath converts an article URL to a relative file path.
//
//	https://mp.weixin.qq.com/s/abc          → s/abc.md
//	https://mp.weixin.qq.com/s?__biz=x&sn=y → s/y.md
//	https://mp.weixin.qq.com/               → index.md
func ArticlePath(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", wxtouch.Errorf(wxtouch.EINVALID, "invalid article URL: %v", err)
	}

	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")

	// Long-form links carry the article identity in the query.
	if p == "s" {
		q := u.Query()
		for _, key := range []string{"sn", "mid"} {
			if id := safeName(q.Get(key)); id != "" {
				return "s/" + id + ".md", nil
			}
		}
		return "index.md", nil
	}

	if p == "" {
		return "index.md", nil
	}
	if strings.HasSuffix(u.Path, "/") {
		return p + "/index.md", nil
	}
	return p + ".md", nil
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
		return ""
	}
	return s
}

// FormatExtraction formats an extraction with YAML front matter.
func FormatExtraction(e *wxtouch.Extraction) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(e.URL)
	if !e.ExtractedAt.IsZero() {
		b.WriteString("\nextracted: ")
		b.WriteString(e.ExtractedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(e.Markdown)
	return b.String()
}

// Ensure Writer implements wxtouch.ExtractionWriter at compile time.
var _ wxtouch.ExtractionWriter = (*Writer)(nil)

// Writer writes extractions as Markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExtraction writes e to disk and returns the file path.
func (w *Writer) WriteExtraction(ctx context.Context, e *wxtouch.Extraction) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := ArticlePath(e.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatExtraction(e)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
