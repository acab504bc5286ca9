package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	main "github.com/HeteroCat/wx-touch/cmd/wxtouch"
	"github.com/HeteroCat/wx-touch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestCmd_Run(t *testing.T) {
	t.Parallel()

	cst := time.FixedZone("UTC+8", 8*60*60)

	t.Run("lists articles with formatted dates", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, nickname string, count int) (*wxtouch.Page[wxtouch.Article], error) {
				assert.Equal(t, "Acme Tech", nickname)
				assert.Equal(t, 5, count)
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{{
					Title:      "Launch day",
					Link:       "https://mp.weixin.qq.com/s/abc",
					Digest:     "We shipped.",
					CreateTime: 1709597045,
				}}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Location: cst}

		err := (&main.LatestCmd{Nickname: "Acme Tech", Count: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "2024/3/5 08:04:05  Launch day\n  https://mp.weixin.qq.com/s/abc\n  We shipped.\n", stdout.String())
	})

	t.Run("prints titles verbatim", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, _ string, _ int) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{{Title: "a<b & c"}}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Location: time.UTC}

		err := (&main.LatestCmd{Nickname: "Acme", Count: 10}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "a<b & c")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, _ string, _ int) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc}

		err := (&main.LatestCmd{Nickname: "Acme", Count: 10}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No articles found.\n", stdout.String())
	})

	t.Run("fails on application code", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, _ string, _ int) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 404}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Service: svc}

		err := (&main.LatestCmd{Nickname: "Acme", Count: 10}).Run(deps)

		require.EqualError(t, err, "service returned code 404")
		assert.Empty(t, stdout.String())
		assert.Equal(t, "error: service returned code 404\n", stderr.String())
	})

	t.Run("prints service errors to stderr", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, _ string, _ int) (*wxtouch.Page[wxtouch.Article], error) {
				return nil, wxtouch.Errorf(wxtouch.EINVALID, "count must be between 1 and 100")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Service: svc}

		err := (&main.LatestCmd{Nickname: "Acme", Count: 0}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: count must be between 1 and 100\n", stderr.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			LatestArticlesFn: func(_ context.Context, _ string, _ int) (*wxtouch.Page[wxtouch.Article], error) {
				return &wxtouch.Page[wxtouch.Article]{Code: 200, Data: []wxtouch.Article{{Title: "A & B"}}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, JSON: true}

		err := (&main.LatestCmd{Nickname: "Acme", Count: 10}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "A & B"`)
		var page wxtouch.Page[wxtouch.Article]
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &page))
		assert.True(t, page.OK())
	})
}
