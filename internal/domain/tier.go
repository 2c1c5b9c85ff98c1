package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TierKind names a capability tier.
type TierKind string

const (
	TierHighPerformance TierKind = "high-performance"
	TierStandard        TierKind = "standard"
	TierLightweight     TierKind = "lightweight"
	TierCustom          TierKind = "custom"
)

func (k TierKind) valid() bool {
	switch k {
	case TierHighPerformance, TierStandard, TierLightweight, TierCustom:
		return true
	}
	return false
}

// CustomTierConfig is the payload of the custom tier.
type CustomTierConfig struct {
	MaxMemoryMB     uint64 `json:"max_memory_mb" yaml:"max_memory_mb"`
	CPUThreads      int    `json:"cpu_threads" yaml:"cpu_threads"`
	EnableGPU       bool   `json:"enable_gpu" yaml:"enable_gpu"`
	ModelPreference string `json:"model_preference" yaml:"model_preference"`
}

// CapabilityTier is a sum type: Kind selects the variant and Custom is set
// if and only if Kind is TierCustom. Use the constructors to build one.
type CapabilityTier struct {
	Kind   TierKind
	Custom *CustomTierConfig
}

func HighPerformanceTier() CapabilityTier { return CapabilityTier{Kind: TierHighPerformance} }
func StandardTier() CapabilityTier        { return CapabilityTier{Kind: TierStandard} }
func LightweightTier() CapabilityTier     { return CapabilityTier{Kind: TierLightweight} }

func CustomTier(cfg CustomTierConfig) CapabilityTier {
	return CapabilityTier{Kind: TierCustom, Custom: &cfg}
}

// Name returns the wire name of the tier.
func (t CapabilityTier) Name() string {
	return string(t.Kind)
}

// Validate checks that exactly the custom variant carries a payload.
func (t CapabilityTier) Validate() error {
	if !t.Kind.valid() {
		return fmt.Errorf("unknown hardware profile %q", t.Kind)
	}
	if t.Kind == TierCustom && t.Custom == nil {
		return fmt.Errorf("hardware profile %q requires a custom configuration", t.Kind)
	}
	if t.Kind != TierCustom && t.Custom != nil {
		return fmt.Errorf("hardware profile %q does not take a custom configuration", t.Kind)
	}
	return nil
}

type tierWire struct {
	Kind   TierKind          `json:"kind" yaml:"kind"`
	Custom *CustomTierConfig `json:"custom,omitempty" yaml:"custom,omitempty"`
}

func (t CapabilityTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(tierWire{Kind: t.Kind, Custom: t.Custom})
}

func (t *CapabilityTier) UnmarshalJSON(data []byte) error {
	var w tierWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return t.assign(w)
}

// UnmarshalYAML accepts either a bare tier name or a mapping with kind and
// custom keys:
//
//	hardware_profile: standard
//
//	hardware_profile:
//	  kind: custom
//	  custom:
//	    max_memory_mb: 12000
func (t *CapabilityTier) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return t.assign(tierWire{Kind: TierKind(node.Value)})
	}
	var w tierWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return t.assign(w)
}

func (t *CapabilityTier) assign(w tierWire) error {
	tier := CapabilityTier{Kind: w.Kind, Custom: w.Custom}
	if err := tier.Validate(); err != nil {
		return err
	}
	*t = tier
	return nil
}
