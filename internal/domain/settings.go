package domain

// Settings is the user-facing application configuration exposed to the shell.
type Settings struct {
	APIBaseURL        string          `json:"api_base_url"`
	AutoStartServices bool            `json:"auto_start_services"`
	Theme             string          `json:"theme"`
	HardwareProfile   *CapabilityTier `json:"hardware_profile,omitempty"`
}
