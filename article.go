package wxtouch

import (
	"strings"
	"time"
)

// ArticleHost is the host every extractable article URL must mention.
const ArticleHost = "mp.weixin.qq.com"

// Article represents a single published post of an account.
// Timestamps are Unix seconds.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Cover       string `json:"cover"`
	Digest      string `json:"digest"`
	CreateTime  int64  `json:"create_time"`
	UpdateTime  int64  `json:"update_time"`
	PublishType int    `json:"publish_type"`
}

// CreatedAt returns the creation time.
func (a *Article) CreatedAt() time.Time {
	return time.Unix(a.CreateTime, 0)
}

// UpdatedAt returns the last update time.
func (a *Article) UpdatedAt() time.Time {
	return time.Unix(a.UpdateTime, 0)
}

// SearchType selects which article fields a keyword search matches.
type SearchType string

// SearchType values accepted by the keyword search endpoint.
const (
	SearchTitle   SearchType = "title"
	SearchContent SearchType = "content"
)

// KeywordSearch describes a keyword search within one account.
type KeywordSearch struct {
	Keyword  string
	Nickname string

	// SearchType defaults to SearchTitle when empty.
	SearchType SearchType

	Count  int
	Offset int
}

// Validate returns an error if the search contains invalid fields.
func (s *KeywordSearch) Validate() error {
	if strings.TrimSpace(s.Keyword) == "" {
		return Errorf(EINVALID, "search keyword required")
	}
	if strings.TrimSpace(s.Nickname) == "" {
		return Errorf(EINVALID, "account nickname required")
	}
	switch s.SearchType {
	case "", SearchTitle, SearchContent:
	default:
		return Errorf(EINVALID, "search type must be %q or %q, got %q", SearchTitle, SearchContent, s.SearchType)
	}
	if err := ValidateCount(s.Count); err != nil {
		return err
	}
	if s.Offset < 0 {
		return Errorf(EINVALID, "offset must not be negative")
	}
	return nil
}
