package main

import (
	"fmt"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// Run executes the keyword command.
func (c *KeywordCmd) Run(deps *Dependencies) error {
	page, err := deps.Service.SearchArticles(deps.Ctx, wxtouch.KeywordSearch{
		Keyword:    c.Keyword,
		Nickname:   c.Nickname,
		SearchType: wxtouch.SearchType(c.Type),
		Count:      c.Count,
		Offset:     c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wxtouch.ErrorMessage(err))
		return err
	}
	if err := checkPage(page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, page)
	}
	printArticles(deps.Stdout, page, deps.Location, true)
	return nil
}
