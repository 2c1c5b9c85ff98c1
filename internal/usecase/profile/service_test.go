package profile

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stratmaster/desktopd/internal/domain"
)

type fakeProbe struct {
	snapshot domain.HostSnapshot
}

func (p fakeProbe) Snapshot() domain.HostSnapshot { return p.snapshot }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		memory uint64
		gpu    bool
		want   domain.TierKind
	}{
		{"large with gpu", 20_000_000_000, true, domain.TierHighPerformance},
		{"large without gpu", 20_000_000_000, false, domain.TierStandard},
		{"medium", 10_000_000_000, false, domain.TierStandard},
		{"medium with gpu", 10_000_000_000, true, domain.TierStandard},
		{"small", 2_000_000_000, false, domain.TierLightweight},
		{"small with gpu", 2_000_000_000, true, domain.TierLightweight},
		{"exactly 16e9 with gpu", 16_000_000_000, true, domain.TierStandard},
		{"just above 16e9 with gpu", 16_000_000_001, true, domain.TierHighPerformance},
		{"exactly 8e9", 8_000_000_000, false, domain.TierLightweight},
		{"exactly 8e9 with gpu", 8_000_000_000, true, domain.TierLightweight},
		{"just above 8e9", 8_000_000_001, false, domain.TierStandard},
		{"zero", 0, false, domain.TierLightweight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.memory, tt.gpu))
			// pure: same input, same answer
			assert.Equal(t, Classify(tt.memory, tt.gpu), Classify(tt.memory, tt.gpu))
		})
	}
}

func TestClassify_NeverCustom(t *testing.T) {
	for _, m := range []uint64{0, 1, StandardMemory, HighPerformanceMemory, ^uint64(0)} {
		for _, g := range []bool{true, false} {
			assert.NotEqual(t, domain.TierCustom, Classify(m, g))
		}
	}
}

func TestService_SystemInfo(t *testing.T) {
	snap := domain.HostSnapshot{
		Platform:    "linux",
		Arch:        "amd64",
		CPUCount:    16,
		MemoryTotal: 20_000_000_000,
		HasGPU:      true,
	}
	configured := domain.CustomTier(domain.CustomTierConfig{MaxMemoryMB: 4096, CPUThreads: 2})

	svc := NewService(fakeProbe{snap}, &configured, discardLogger())
	info := svc.SystemInfo(context.Background())

	assert.Equal(t, snap, info.HostSnapshot)
	assert.Equal(t, domain.TierHighPerformance, info.RecommendedConfig)
	assert.Equal(t, &configured, info.ConfiguredProfile)
}

func TestService_SystemInfoWithoutConfiguredProfile(t *testing.T) {
	svc := NewService(fakeProbe{domain.HostSnapshot{MemoryTotal: 8_000_000_000}}, nil, discardLogger())
	info := svc.SystemInfo(context.Background())

	assert.Equal(t, domain.TierLightweight, info.RecommendedConfig)
	assert.Nil(t, info.ConfiguredProfile)
}
