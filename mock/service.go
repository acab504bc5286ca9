package mock

import (
	"context"

	wxtouch "github.com/HeteroCat/wx-touch"
)

var _ wxtouch.Service = (*Service)(nil)

// Service is a mock implementation of wxtouch.Service.
type Service struct {
	SearchAccountsFn  func(ctx context.Context, search string) (*wxtouch.Page[wxtouch.Account], error)
	LatestArticlesFn  func(ctx context.Context, nickname string, count int) (*wxtouch.Page[wxtouch.Article], error)
	SearchArticlesFn  func(ctx context.Context, search wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error)
	ExtractMarkdownFn func(ctx context.Context, url string) (string, error)
}

func (s *Service) SearchAccounts(ctx context.Context, search string) (*wxtouch.Page[wxtouch.Account], error) {
	return s.SearchAccountsFn(ctx, search)
}

func (s *Service) LatestArticles(ctx context.Context, nickname string, count int) (*wxtouch.Page[wxtouch.Article], error) {
	return s.LatestArticlesFn(ctx, nickname, count)
}

func (s *Service) SearchArticles(ctx context.Context, search wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
	return s.SearchArticlesFn(ctx, search)
}

func (s *Service) ExtractMarkdown(ctx context.Context, url string) (string, error) {
	return s.ExtractMarkdownFn(ctx, url)
}
