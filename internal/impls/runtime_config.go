package impls

// RuntimeConfig holds the process-wide primary API base URL.
type RuntimeConfig interface {
	BaseURL() string
	SetBaseURL(url string)
}
