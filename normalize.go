package wxtouch

import (
	"strings"
	"time"
)

// NormalizeImageURL upgrades protocol-relative and plain-http image URLs to
// https so they are not blocked as mixed content. Other URLs are returned
// trimmed but otherwise unchanged.
func NormalizeImageURL(url string) string {
	if url == "" {
		return url
	}
	result := strings.TrimSpace(url)
	if strings.HasPrefix(result, "//") {
		result = "https:" + result
	}
	if rest, ok := strings.CutPrefix(result, "http://"); ok {
		result = "https://" + rest
	}
	return result
}

// TimestampLayout is the date format used when listing articles.
const TimestampLayout = "2006/1/2 15:04:05"

// FormatTimestamp renders Unix seconds in loc using TimestampLayout.
// A nil loc uses time.Local.
func FormatTimestamp(sec int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(TimestampLayout)
}
