package wxtouch

import "strings"

// Count bounds for the listing and search endpoints.
const (
	MinCount     = 1
	MaxCount     = 100
	DefaultCount = 10
)

// ValidateCount returns EINVALID if count is outside [MinCount, MaxCount].
func ValidateCount(count int) error {
	if count < MinCount || count > MaxCount {
		return Errorf(EINVALID, "count must be between %d and %d, got %d", MinCount, MaxCount, count)
	}
	return nil
}

// ClampCount caps count at MaxCount. The service caps results on its own
// side as well.
func ClampCount(count int) int {
	return min(count, MaxCount)
}

// ValidateSearch returns EINVALID if the trimmed search term is empty.
func ValidateSearch(search string) error {
	if strings.TrimSpace(search) == "" {
		return Errorf(EINVALID, "search term required")
	}
	return nil
}

// ValidateNickname returns EINVALID if the trimmed nickname is empty.
func ValidateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return Errorf(EINVALID, "account nickname required")
	}
	return nil
}

// ValidateArticleURL returns EINVALID if url is blank or does not mention
// ArticleHost.
func ValidateArticleURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if !strings.Contains(url, ArticleHost) {
		return Errorf(EINVALID, "article URL must be hosted on %s", ArticleHost)
	}
	return nil
}
