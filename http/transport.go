package http

import (
	"net/http"
)

// SigningTransport is an http.RoundTripper that adds the authentication
// headers to every request before handing it to the underlying transport.
//
// The signed path is taken from the request context (see WithEndpoint) and
// falls back to the URL path, so a base URL with its own path prefix signs
// the bare endpoint the service expects.
type SigningTransport struct {
	// Transport is the underlying RoundTripper.
	// If nil, http.DefaultTransport is used.
	Transport http.RoundTripper

	Credentials Credentials

	// Clock supplies the timestamp. If nil, SystemClock is used.
	Clock Clock
}

// NewSigningTransport creates a SigningTransport over http.DefaultTransport.
func NewSigningTransport(creds Credentials) *SigningTransport {
	return &SigningTransport{
		Transport:   http.DefaultTransport,
		Credentials: creds,
		Clock:       SystemClock{},
	}
}

// RoundTrip implements http.RoundTripper by signing a clone of req.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	signed := req.Clone(req.Context())

	path, ok := EndpointFromContext(req.Context())
	if !ok {
		path = req.URL.Path
	}

	clock := t.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	for name, values := range AuthHeaders(t.Credentials, path, clock.Now()) {
		signed.Header[name] = values
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return transport.RoundTrip(signed)
}
