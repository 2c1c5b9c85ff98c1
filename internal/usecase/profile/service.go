package profile

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/stratmaster/desktopd/internal/domain"
	"github.com/stratmaster/desktopd/internal/impls"
)

// Memory thresholds in bytes. Both comparisons are strict: a host with
// exactly the threshold falls to the lower tier.
const (
	HighPerformanceMemory uint64 = 16_000_000_000
	StandardMemory        uint64 = 8_000_000_000
)

// Classify suggests a starting tier for a host. It never returns TierCustom;
// the custom tier is only ever selected by the user.
func Classify(memoryTotal uint64, hasGPU bool) domain.TierKind {
	switch {
	case memoryTotal > HighPerformanceMemory && hasGPU:
		return domain.TierHighPerformance
	case memoryTotal > StandardMemory:
		return domain.TierStandard
	default:
		return domain.TierLightweight
	}
}

type Service struct {
	probe      impls.HostProbe
	configured *domain.CapabilityTier
	logger     *slog.Logger
}

// NewService creates the profiler. configured is the tier chosen in the
// settings file and may be nil.
func NewService(probe impls.HostProbe, configured *domain.CapabilityTier, logger *slog.Logger) *Service {
	return &Service{probe: probe, configured: configured, logger: logger}
}

// SystemInfo snapshots the host and attaches the recommended tier. It always
// succeeds with best-effort data.
func (s *Service) SystemInfo(ctx context.Context) domain.SystemInfo {
	snapshot := s.probe.Snapshot()
	info := domain.SystemInfo{
		HostSnapshot:      snapshot,
		RecommendedConfig: Classify(snapshot.MemoryTotal, snapshot.HasGPU),
		ConfiguredProfile: s.configured,
	}

	s.logger.InfoContext(ctx, "system information collected",
		"platform", snapshot.Platform,
		"arch", snapshot.Arch,
		"cpus", snapshot.CPUCount,
		"memory", humanize.Bytes(snapshot.MemoryTotal),
		"gpu", snapshot.HasGPU,
		"recommended", info.RecommendedConfig,
	)
	return info
}
