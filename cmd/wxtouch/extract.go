package main

import (
	"fmt"
	"strings"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	markdown, err := deps.Service.ExtractMarkdown(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wxtouch.ErrorMessage(err))
		return err
	}

	e := &wxtouch.Extraction{
		URL:         strings.TrimSpace(c.URL),
		Markdown:    markdown,
		ExtractedAt: time.Now(),
	}

	if deps.Writer != nil {
		path, err := deps.Writer.WriteExtraction(deps.Ctx, e)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wxtouch.ErrorMessage(err))
			return err
		}
		if deps.JSON {
			return writeJSON(deps.Stdout, map[string]string{"url": e.URL, "path": path})
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, e)
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
