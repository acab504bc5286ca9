package main

import (
	"fmt"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// Run executes the latest command.
func (c *LatestCmd) Run(deps *Dependencies) error {
	page, err := deps.Service.LatestArticles(deps.Ctx, c.Nickname, c.Count)
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
	printArticles(deps.Stdout, page, deps.Location, false)
	return nil
}
