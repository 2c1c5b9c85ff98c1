package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCapabilityTier_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tier    CapabilityTier
		wantErr bool
	}{
		{"high performance", HighPerformanceTier(), false},
		{"standard", StandardTier(), false},
		{"lightweight", LightweightTier(), false},
		{"custom", CustomTier(CustomTierConfig{MaxMemoryMB: 4096}), false},
		{"custom without payload", CapabilityTier{Kind: TierCustom}, true},
		{"payload on standard", CapabilityTier{Kind: TierStandard, Custom: &CustomTierConfig{}}, true},
		{"unknown kind", CapabilityTier{Kind: "turbo"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tier.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCapabilityTier_JSON(t *testing.T) {
	tier := CustomTier(CustomTierConfig{
		MaxMemoryMB:     12000,
		CPUThreads:      6,
		EnableGPU:       true,
		ModelPreference: "mixtral",
	})
	data, err := json.Marshal(tier)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"custom","custom":{"max_memory_mb":12000,"cpu_threads":6,"enable_gpu":true,"model_preference":"mixtral"}}`, string(data))

	var decoded CapabilityTier
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tier, decoded)

	data, err = json.Marshal(StandardTier())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"standard"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"custom"}`), &decoded))
}

func TestCapabilityTier_YAML(t *testing.T) {
	var doc struct {
		Profile CapabilityTier `yaml:"hardware_profile"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("hardware_profile: lightweight\n"), &doc))
	assert.Equal(t, LightweightTier(), doc.Profile)

	src := `
hardware_profile:
  kind: custom
  custom:
    max_memory_mb: 8000
    cpu_threads: 4
    model_preference: llama
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, TierCustom, doc.Profile.Kind)
	require.NotNil(t, doc.Profile.Custom)
	assert.Equal(t, uint64(8000), doc.Profile.Custom.MaxMemoryMB)
	assert.Equal(t, 4, doc.Profile.Custom.CPUThreads)
	assert.False(t, doc.Profile.Custom.EnableGPU)

	assert.Error(t, yaml.Unmarshal([]byte("hardware_profile: custom\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("hardware_profile: turbo\n"), &doc))
}

func TestErrConnection_Message(t *testing.T) {
	err := ErrConnection{URL: "http://x/healthz", Status: 503}
	assert.Equal(t, "API health check failed with status: 503", err.Error())
	assert.Nil(t, err.Unwrap())
}
