package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	wxhtml "github.com/HeteroCat/wx-touch/html"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// checkPage reports a body code other than 200 as an error.
func checkPage[T any](page *wxtouch.Page[T]) error {
	if page.OK() {
		return nil
	}
	if page == nil {
		return fmt.Errorf("service returned no result")
	}
	return fmt.Errorf("service returned code %d", page.Code)
}

func printAccount(w io.Writer, a wxtouch.Account) {
	if a.Alias != "" {
		fmt.Fprintf(w, "%s (%s)\n", a.Name, a.Alias)
	} else {
		fmt.Fprintln(w, a.Name)
	}
	fmt.Fprintf(w, "  type: %s  status: %s\n", a.ServiceType, a.VerifyStatus)
	if a.Signature != "" {
		fmt.Fprintf(w, "  %s\n", a.Signature)
	}
	if avatar := wxtouch.NormalizeImageURL(a.HeadImageURL); avatar != "" {
		fmt.Fprintf(w, "  avatar: %s\n", avatar)
	}
}

// printArticles lists page. When highlighted is set, title and digest carry
// keyword-search markup and are rendered with wxhtml.RenderHighlight.
func printArticles(w io.Writer, page *wxtouch.Page[wxtouch.Article], loc *time.Location, highlighted bool) {
	if page.Len() == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}
	for _, a := range page.Data {
		title, digest := a.Title, a.Digest
		if highlighted {
			title, digest = wxhtml.RenderHighlight(title), wxhtml.RenderHighlight(digest)
		}
		fmt.Fprintf(w, "%s  %s\n", wxtouch.FormatTimestamp(a.CreateTime, loc), title)
		fmt.Fprintf(w, "  %s\n", a.Link)
		if digest != "" {
			fmt.Fprintf(w, "  %s\n", digest)
		}
	}
	if page.Total != nil {
		fmt.Fprintf(w, "total: %d\n", *page.Total)
	}
}
