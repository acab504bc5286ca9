// Package otel traces calls to a wxtouch.Service with OpenTelemetry spans.
package otel

import (
	"context"

	wxtouch "github.com/HeteroCat/wx-touch"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans created by this package.
const TracerName = "github.com/HeteroCat/wx-touch"

// Attribute keys.
const (
	AttrAppCode   = attribute.Key("app.code")
	AttrCount     = attribute.Key("wxtouch.result_count")
	AttrErrorCode = attribute.Key("wxtouch.error_code")
)

// Ensure TracingService implements wxtouch.Service at compile time.
var _ wxtouch.Service = (*TracingService)(nil)

// TracingService wraps a wxtouch.Service with one span per call.
type TracingService struct {
	next   wxtouch.Service
	tracer trace.Tracer
}

// NewTracingService returns a service that starts spans from tp.
// A nil tp uses the global provider.
func NewTracingService(next wxtouch.Service, tp trace.TracerProvider) *TracingService {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TracingService{next: next, tracer: tp.Tracer(TracerName)}
}

// SearchAccounts delegates to the wrapped service.
func (s *TracingService) SearchAccounts(ctx context.Context, search string) (*wxtouch.Page[wxtouch.Account], error) {
	ctx, span := s.tracer.Start(ctx, "wxtouch.SearchAccounts",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("wxtouch.search", search)),
	)
	defer span.End()

	page, err := s.next.SearchAccounts(ctx, search)
	if page != nil {
		span.SetAttributes(AttrAppCode.Int(page.Code), AttrCount.Int(page.Len()))
	}
	record(span, err)
	return page, err
}

// LatestArticles delegates to the wrapped service.
func (s *TracingService) LatestArticles(ctx context.Context, nickname string, count int) (*wxtouch.Page[wxtouch.Article], error) {
	ctx, span := s.tracer.Start(ctx, "wxtouch.LatestArticles",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("wxtouch.nickname", nickname),
			attribute.Int("wxtouch.count", count),
		),
	)
	defer span.End()

	page, err := s.next.LatestArticles(ctx, nickname, count)
	if page != nil {
		span.SetAttributes(AttrAppCode.Int(page.Code), AttrCount.Int(page.Len()))
	}
	record(span, err)
	return page, err
}

// SearchArticles delegates to the wrapped service.
func (s *TracingService) SearchArticles(ctx context.Context, search wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
	ctx, span := s.tracer.Start(ctx, "wxtouch.SearchArticles",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("wxtouch.keyword", search.Keyword),
			attribute.String("wxtouch.nickname", search.Nickname),
			attribute.String("wxtouch.search_type", string(search.SearchType)),
			attribute.Int("wxtouch.count", search.Count),
			attribute.Int("wxtouch.offset", search.Offset),
		),
	)
	defer span.End()

	page, err := s.next.SearchArticles(ctx, search)
	if page != nil {
		span.SetAttributes(AttrAppCode.Int(page.Code), AttrCount.Int(page.Len()))
	}
	record(span, err)
	return page, err
}

// ExtractMarkdown delegates to the wrapped service.
func (s *TracingService) ExtractMarkdown(ctx context.Context, url string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "wxtouch.ExtractMarkdown",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("wxtouch.url", url)),
	)
	defer span.End()

	markdown, err := s.next.ExtractMarkdown(ctx, url)
	if err == nil {
		span.SetAttributes(attribute.Int("wxtouch.markdown_bytes", len(markdown)))
	}
	record(span, err)
	return markdown, err
}

func record(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetAttributes(AttrErrorCode.String(wxtouch.ErrorCode(err)))
	span.SetStatus(codes.Error, wxtouch.ErrorMessage(err))
}
