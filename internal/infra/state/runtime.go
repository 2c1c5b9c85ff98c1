package state

import "sync"

// DefaultAPIBaseURL is the primary API base URL used until one is configured.
const DefaultAPIBaseURL = "http://localhost:8080"

// RuntimeConfig implements impls.RuntimeConfig. The lock only guards copies
// in and out of the value and is never held across I/O.
type RuntimeConfig struct {
	mu      sync.Mutex
	baseURL string
}

func NewRuntimeConfig(baseURL string) *RuntimeConfig {
	return &RuntimeConfig{baseURL: baseURL}
}

// BaseURL returns the current base URL, or DefaultAPIBaseURL when it is empty.
func (c *RuntimeConfig) BaseURL() string {
	c.mu.Lock()
	url := c.baseURL
	c.mu.Unlock()

	if url == "" {
		return DefaultAPIBaseURL
	}
	return url
}

// SetBaseURL overwrites the base URL. The value is not validated; a malformed
// URL surfaces as a connection error on the next health check.
func (c *RuntimeConfig) SetBaseURL(url string) {
	c.mu.Lock()
	c.baseURL = url
	c.mu.Unlock()
}
