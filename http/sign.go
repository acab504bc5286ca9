package http

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"
)

// Authentication header names required on every request.
const (
	HeaderAPIKey    = "x-api-key"
	HeaderTimestamp = "x-timestamp"
	HeaderSignature = "x-signature"
)

// Credentials holds the shared key pair issued by the crawl service.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Valid reports whether both halves of the key pair are set. The service
// rejects requests signed with incomplete credentials.
func (c Credentials) Valid() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Sign returns the lowercase hex MD5 digest of
// apiKey + path + timestamp + apiSecret.
// The service only accepts MD5; path excludes the query string.
func Sign(apiKey, apiSecret, path, timestamp string) string {
	sum := md5.Sum([]byte(apiKey + path + timestamp + apiSecret))
	return hex.EncodeToString(sum[:])
}

// AuthHeaders derives the three authentication headers for path at now.
func AuthHeaders(creds Credentials, path string, now time.Time) http.Header {
	timestamp := strconv.FormatInt(now.Unix(), 10)

	h := make(http.Header, 3)
	h.Set(HeaderAPIKey, creds.APIKey)
	h.Set(HeaderTimestamp, timestamp)
	h.Set(HeaderSignature, Sign(creds.APIKey, creds.APISecret, path, timestamp))
	return h
}
