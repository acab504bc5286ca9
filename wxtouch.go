// Package wxtouch provides a signed client for a remote WeChat article-crawl
// service. It looks up public accounts, lists an account's latest articles,
// converts article pages to Markdown, and searches an account's articles by
// keyword.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, slog/, prometheus/).
package wxtouch

import "context"

// Service is the full set of operations exposed by the crawl service.
// The signed HTTP client implements it, and so do the logging, metrics and
// tracing decorators that wrap it.
type Service interface {
	AccountService
	ArticleService
	MarkdownExtractor
}

// AccountService looks up public accounts.
type AccountService interface {
	// SearchAccounts returns accounts matching the search term.
	// Returns EINVALID if the trimmed term is empty.
	SearchAccounts(ctx context.Context, search string) (*Page[Account], error)
}

// ArticleService lists and searches the articles of one account.
type ArticleService interface {
	// LatestArticles returns up to count of the account's most recent
	// articles. The nickname must match the account name exactly.
	// Returns EINVALID if nickname is blank or count is outside [1, 100].
	LatestArticles(ctx context.Context, nickname string, count int) (*Page[Article], error)

	// SearchArticles searches the account's articles by keyword.
	// Returns EINVALID if the search fails validation.
	SearchArticles(ctx context.Context, search KeywordSearch) (*Page[Article], error)
}

// MarkdownExtractor converts an article page into Markdown.
type MarkdownExtractor interface {
	// ExtractMarkdown returns the article at url as Markdown with encoding
	// artifacts removed. Returns EINVALID if url is blank or not hosted on
	// ArticleHost.
	ExtractMarkdown(ctx context.Context, url string) (string, error)
}
