package main

import (
	"fmt"

	wxtouch "github.com/HeteroCat/wx-touch"
	"github.com/HeteroCat/wx-touch/batch"
)

// searchResult is the JSON form of one query's outcome.
type searchResult struct {
	Query string                         `json:"query"`
	Page  *wxtouch.Page[wxtouch.Account] `json:"page,omitempty"`
	Error string                         `json:"error,omitempty"`
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	runner := batch.NewRunner(c.Concurrency, c.Rate)
	results := runner.SearchAccounts(deps.Ctx, deps.Service, c.Queries)

	// Application codes other than 200 count as failures.
	for i := range results {
		if results[i].Err == nil {
			results[i].Err = checkPage(results[i].Page)
		}
	}

	if deps.JSON {
		out := make([]searchResult, len(results))
		for i, r := range results {
			out[i] = searchResult{Query: r.Query, Page: r.Page}
			if r.Err != nil {
				out[i].Error = wxtouch.ErrorMessage(r.Err)
			}
		}
		if err := writeJSON(deps.Stdout, out); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(deps.Stdout)
				}
				fmt.Fprintf(deps.Stdout, "== %s ==\n", r.Query)
			}
			if r.Err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Query, wxtouch.ErrorMessage(r.Err))
				continue
			}
			if r.Page.Len() == 0 {
				fmt.Fprintln(deps.Stdout, "No accounts found.")
				continue
			}
			for _, a := range r.Page.Data {
				printAccount(deps.Stdout, a)
			}
		}
	}

	if failed := batch.Failed(results); len(failed) > 0 {
		if len(results) == 1 {
			return failed[0].Err
		}
		return fmt.Errorf("%d of %d searches failed", len(failed), len(results))
	}
	return nil
}
