package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	main "github.com/HeteroCat/wx-touch/cmd/wxtouch"
	"github.com/HeteroCat/wx-touch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes search parameters and prints total", func(t *testing.T) {
		t.Parallel()

		total := 42
		svc := &mock.Service{
			SearchArticlesFn: func(_ context.Context, search wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
				assert.Equal(t, wxtouch.KeywordSearch{
					Keyword:    "AI",
					Nickname:   "Acme",
					SearchType: wxtouch.SearchContent,
					Count:      20,
					Offset:     40,
				}, search)
				return &wxtouch.Page[wxtouch.Article]{
					Code:  200,
					Data:  []wxtouch.Article{{Title: "AI notes", Link: "https://mp.weixin.qq.com/s/ai", CreateTime: 0}},
					Total: &total,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Location: time.UTC}

		err := (&main.KeywordCmd{Keyword: "AI", Nickname: "Acme", Type: "content", Count: 20, Offset: 40}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1970/1/1 00:00:00  AI notes")
		assert.Contains(t, output, "total: 42")
	})

	t.Run("fails on application code", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			SearchArticlesFn: func(_ context.Context, _ wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 500}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Service: svc}

		err := (&main.KeywordCmd{Keyword: "AI", Nickname: "Acme", Type: "title", Count: 10}).Run(deps)

		require.EqualError(t, err, "service returned code 500")
		assert.Equal(t, "error: service returned code 500\n", stderr.String())
	})

	t.Run("renders highlight markup as text", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			SearchArticlesFn: func(_ context.Context, _ wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{{
					Title:  `<em class="highlight">AI</em> news<script>x</script>`,
					Link:   "https://mp.weixin.qq.com/s/ai",
					Digest: `all about <em class="highlight">AI</em> &amp; <b>more</b>`,
				}}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Location: time.UTC}

		err := (&main.KeywordCmd{Keyword: "AI", Nickname: "Acme", Type: "title", Count: 10}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "1970/1/1 00:00:00  *AI* news\n  https://mp.weixin.qq.com/s/ai\n  all about *AI* & more\n", stdout.String())
	})

	t.Run("keeps highlight markup in JSON", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			SearchArticlesFn: func(_ context.Context, _ wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{{
					Title: `<em class="highlight">AI</em> news`,
				}}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, JSON: true}

		err := (&main.KeywordCmd{Keyword: "AI", Nickname: "Acme", Type: "title", Count: 10}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `<em class=\"highlight\">AI</em> news`)
	})

	t.Run("prints request errors", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			SearchArticlesFn: func(_ context.Context, _ wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
				return nil, wxtouch.NewRequestError(401, "invalid signature")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Service: svc}

		err := (&main.KeywordCmd{Keyword: "AI", Nickname: "Acme", Type: "title", Count: 10}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "API request failed: 401 - invalid signature")
	})
}
