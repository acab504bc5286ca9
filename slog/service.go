// Package slog provides logging decorators for wxtouch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
)

// Ensure LoggingService implements wxtouch.Service.
var _ wxtouch.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with structured logging of every call.
type LoggingService struct {
	next   wxtouch.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next wxtouch.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// SearchAccounts delegates to the wrapped service and logs the operation.
func (s *LoggingService) SearchAccounts(ctx context.Context, search string) (page *wxtouch.Page[wxtouch.Account], err error) {
	defer func(begin time.Time) {
		s.log(ctx, "search accounts", err,
			"search", search,
			"code", code(page),
			"count", page.Len(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchAccounts(ctx, search)
}

// LatestArticles delegates to the wrapped service and logs the operation.
func (s *LoggingService) LatestArticles(ctx context.Context, nickname string, count int) (page *wxtouch.Page[wxtouch.Article], err error) {
	defer func(begin time.Time) {
		s.log(ctx, "latest articles", err,
			"nickname", nickname,
			"requested", count,
			"code", code(page),
			"count", page.Len(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.LatestArticles(ctx, nickname, count)
}

// SearchArticles delegates to the wrapped service and logs the operation.
func (s *LoggingService) SearchArticles(ctx context.Context, search wxtouch.KeywordSearch) (page *wxtouch.Page[wxtouch.Article], err error) {
	defer func(begin time.Time) {
		s.log(ctx, "keyword search", err,
			"keyword", search.Keyword,
			"nickname", search.Nickname,
			"search_type", string(search.SearchType),
			"offset", search.Offset,
			"code", code(page),
			"count", page.Len(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchArticles(ctx, search)
}

// ExtractMarkdown delegates to the wrapped service and logs the operation.
func (s *LoggingService) ExtractMarkdown(ctx context.Context, url string) (markdown string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "extract markdown", err,
			"url", url,
			"bytes", len(markdown),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ExtractMarkdown(ctx, url)
}

// log writes at info level, or warn when the call failed.
func (s *LoggingService) log(ctx context.Context, msg string, err error, args ...any) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
		args = append(args, "err", err, "error_code", wxtouch.ErrorCode(err))
	}
	s.logger.Log(ctx, level, msg, args...)
}

func code[T any](page *wxtouch.Page[T]) int {
	if page == nil {
		return 0
	}
	return page.Code
}
