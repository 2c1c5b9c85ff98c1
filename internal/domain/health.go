package domain

// ServiceEndpoint is a named health URL of a local service.
type ServiceEndpoint struct {
	Name string
	URL  string
}

// ServiceHealthMap maps a service name to whether its probe succeeded.
type ServiceHealthMap map[string]bool

// PrimaryHealthReport is the body returned by the primary API's /healthz.
// A nil Services map means the backend reported no sub-service detail.
type PrimaryHealthReport struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}
