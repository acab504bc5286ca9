package wxtouch_test

import (
	"testing"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "protocol-relative gets https", in: "//x.com/a.png", want: "https://x.com/a.png"},
		{name: "http upgraded to https", in: "http://x.com/a.png", want: "https://x.com/a.png"},
		{name: "https unchanged", in: "https://x.com/a.png", want: "https://x.com/a.png"},
		{name: "relative path unchanged", in: "/img/a.png", want: "/img/a.png"},
		{name: "data URL unchanged", in: "data:image/png;base64,AAAA", want: "data:image/png;base64,AAAA"},
		{name: "surrounding whitespace trimmed", in: "  //x.com/a.png ", want: "https://x.com/a.png"},
		{name: "empty passes through", in: "", want: ""},
		{name: "only the scheme is rewritten", in: "http://x.com/?next=http://y.com", want: "https://x.com/?next=http://y.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wxtouch.NormalizeImageURL(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, wxtouch.NormalizeImageURL(got), "should be idempotent")
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	shanghai := time.FixedZone("CST", 8*60*60)

	assert.Equal(t, "2024/3/5 08:04:05", wxtouch.FormatTimestamp(1709597045, shanghai))
	assert.Equal(t, "1970/1/1 00:00:00", wxtouch.FormatTimestamp(0, time.UTC))
}
