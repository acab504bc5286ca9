// Package prometheus records request metrics for a wxtouch.Service.
package prometheus

import (
	"context"
	"errors"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels.
const (
	ResultOK           = "ok"
	ResultInvalid      = "invalid"
	ResultRequestError = "request_error"
	ResultAppError     = "app_error"
)

// Operation labels.
const (
	OpSearchAccounts  = "search_accounts"
	OpLatestArticles  = "latest_articles"
	OpSearchArticles  = "keyword_search"
	OpExtractMarkdown = "extract_markdown"
)

// Ensure InstrumentedService implements wxtouch.Service at compile time.
var _ wxtouch.Service = (*InstrumentedService)(nil)

// Metrics holds the collectors shared by instrumented services.
type Metrics struct {
	// RequestsTotal counts calls by operation and result.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes call latency by operation.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wxtouch_requests_total",
			Help: "Total crawl service calls by operation and result.",
		}, []string{"operation", "result"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wxtouch_request_duration_seconds",
			Help:    "Duration of crawl service calls in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.RequestsTotal, m.RequestDuration)
	}
	return m
}

// InstrumentedService wraps a wxtouch.Service with Prometheus metrics.
type InstrumentedService struct {
	next    wxtouch.Service
	metrics *Metrics
}

// NewInstrumentedService returns a service that records metrics registered
// on reg before delegating to next.
func NewInstrumentedService(next wxtouch.Service, reg prometheus.Registerer) *InstrumentedService {
	return NewInstrumentedServiceWithMetrics(next, NewMetrics(reg))
}

// NewInstrumentedServiceWithMetrics returns a service that records into an
// existing set of collectors.
func NewInstrumentedServiceWithMetrics(next wxtouch.Service, metrics *Metrics) *InstrumentedService {
	return &InstrumentedService{next: next, metrics: metrics}
}

// SearchAccounts delegates to the wrapped service.
func (s *InstrumentedService) SearchAccounts(ctx context.Context, search string) (page *wxtouch.Page[wxtouch.Account], err error) {
	defer func(begin time.Time) {
		s.observe(OpSearchAccounts, begin, result(err, page.OK(), page != nil))
	}(time.Now())

	return s.next.SearchAccounts(ctx, search)
}

// LatestArticles delegates to the wrapped service.
func (s *InstrumentedService) LatestArticles(ctx context.Context, nickname string, count int) (page *wxtouch.Page[wxtouch.Article], err error) {
	defer func(begin time.Time) {
		s.observe(OpLatestArticles, begin, result(err, page.OK(), page != nil))
	}(time.Now())

	return s.next.LatestArticles(ctx, nickname, count)
}

// SearchArticles delegates to the wrapped service.
func (s *InstrumentedService) SearchArticles(ctx context.Context, search wxtouch.KeywordSearch) (page *wxtouch.Page[wxtouch.Article], err error) {
	defer func(begin time.Time) {
		s.observe(OpSearchArticles, begin, result(err, page.OK(), page != nil))
	}(time.Now())

	return s.next.SearchArticles(ctx, search)
}

// ExtractMarkdown delegates to the wrapped service.
func (s *InstrumentedService) ExtractMarkdown(ctx context.Context, url string) (markdown string, err error) {
	defer func(begin time.Time) {
		s.observe(OpExtractMarkdown, begin, result(err, true, true))
	}(time.Now())

	return s.next.ExtractMarkdown(ctx, url)
}

func (s *InstrumentedService) observe(op string, begin time.Time, res string) {
	s.metrics.RequestsTotal.WithLabelValues(op, res).Inc()
	s.metrics.RequestDuration.WithLabelValues(op).Observe(time.Since(begin).Seconds())
}

// result maps a call outcome to its label. ok reports whether the body code
// was 200; paged is false when no page was returned.
func result(err error, ok, paged bool) string {
	var reqErr *wxtouch.RequestError
	switch {
	case err == nil && paged && !ok:
		return ResultAppError
	case err == nil:
		return ResultOK
	case errors.As(err, &reqErr):
		return ResultRequestError
	case wxtouch.ErrorCode(err) == wxtouch.EINVALID:
		return ResultInvalid
	default:
		return ResultRequestError
	}
}
