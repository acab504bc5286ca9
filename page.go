package wxtouch

// StatusOK is the application-level success code carried in every paged
// response body.
const StatusOK = 200

// Page is the response envelope of the listing and search endpoints.
//
// A 2xx response whose Code is not StatusOK is still returned without error;
// callers must check OK before trusting Data.
type Page[T any] struct {
	Code int `json:"code"`
	Data []T `json:"data"`

	// Total is nil when the endpoint does not report it.
	Total *int `json:"total,omitempty"`
}

// OK reports whether the body carries the application success code.
func (p *Page[T]) OK() bool {
	return p != nil && p.Code == StatusOK
}

// Len returns the number of items in the page.
func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}
