package wxtouch

// ServiceType classifies a public account.
type ServiceType int

// ServiceType values as reported by the service.
const (
	ServiceTypeUnknown      ServiceType = 0
	ServiceTypeSubscription ServiceType = 1
	ServiceTypeService      ServiceType = 2
)

// String returns a human-readable label for the service type.
func (t ServiceType) String() string {
	switch t {
	case ServiceTypeSubscription:
		return "subscription"
	case ServiceTypeService:
		return "service"
	default:
		return "unknown"
	}
}

// VerifyStatus reports whether an account is verified.
type VerifyStatus int

// VerifyStatus values as reported by the service.
const (
	VerifyStatusUnverified VerifyStatus = -1
	VerifyStatusVerified   VerifyStatus = 0
)

// String returns a human-readable label for the verification status.
func (s VerifyStatus) String() string {
	if s == VerifyStatusVerified {
		return "verified"
	}
	return "unverified"
}

// Account represents a followable public account.
// Name is the exact, case-sensitive key used by article queries.
type Account struct {
	Name         string       `json:"name"`
	Alias        string       `json:"alias"`
	HeadImageURL string       `json:"head_image_url"`
	Signature    string       `json:"signature"`
	ServiceType  ServiceType  `json:"service_type"`
	VerifyStatus VerifyStatus `json:"verify_status"`
}
