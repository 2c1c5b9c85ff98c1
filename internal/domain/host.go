package domain

// HostSnapshot is a point-in-time view of the host hardware. It is built fresh
// for every request and never persisted.
type HostSnapshot struct {
	Platform    string `json:"platform"`
	Arch        string `json:"arch"`
	CPUCount    int    `json:"cpu_count"`
	CPUModel    string `json:"cpu_model,omitempty"`
	MemoryTotal uint64 `json:"memory_total"`

	// HasGPU is a heuristic derived from environment variables, not from
	// enumerating devices. A host with a GPU but without those variables
	// reports false.
	HasGPU bool `json:"has_gpu"`
}

// SystemInfo is the answer to a get_system_info command.
type SystemInfo struct {
	HostSnapshot

	// RecommendedConfig is the auto-derived tier name. It is never "custom".
	RecommendedConfig TierKind `json:"recommended_config"`

	// ConfiguredProfile is the tier the user selected in the settings file, if any.
	ConfiguredProfile *CapabilityTier `json:"configured_profile,omitempty"`
}
