package system

import (
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"

	"github.com/stratmaster/desktopd/internal/domain"
)

// Probe implements impls.HostProbe.
type Probe struct {
	totalMemory func() uint64
	meminfoPath string
	lookupEnv   func(string) (string, bool)
	cpuModel    func() string
}

func NewProbe() *Probe {
	return &Probe{
		totalMemory: memory.TotalMemory,
		meminfoPath: "/proc/meminfo",
		lookupEnv:   os.LookupEnv,
		cpuModel:    func() string { return strings.TrimSpace(cpuid.CPU.BrandName) },
	}
}

// Snapshot never fails: every field degrades to a best-effort value.
func (p *Probe) Snapshot() domain.HostSnapshot {
	return domain.HostSnapshot{
		Platform:    runtime.GOOS,
		Arch:        runtime.GOARCH,
		CPUCount:    runtime.NumCPU(),
		CPUModel:    p.cpuModel(),
		MemoryTotal: p.memoryTotal(),
		HasGPU:      p.hasGPU(),
	}
}
