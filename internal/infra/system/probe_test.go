package system

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProbe(total uint64, env map[string]string) *Probe {
	return &Probe{
		totalMemory: func() uint64 { return total },
		lookupEnv: func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		},
		cpuModel: func() string { return "Test CPU" },
	}
}

func TestProbe_Snapshot(t *testing.T) {
	p := testProbe(32_000_000_000, map[string]string{"CUDA_VISIBLE_DEVICES": "0"})

	snap := p.Snapshot()
	assert.Equal(t, runtime.GOOS, snap.Platform)
	assert.Equal(t, runtime.GOARCH, snap.Arch)
	assert.Equal(t, runtime.NumCPU(), snap.CPUCount)
	assert.Greater(t, snap.CPUCount, 0)
	assert.Equal(t, "Test CPU", snap.CPUModel)
	assert.Equal(t, uint64(32_000_000_000), snap.MemoryTotal)
	assert.True(t, snap.HasGPU)
}

func TestProbe_GPUHeuristic(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"none", map[string]string{}, false},
		{"cuda", map[string]string{"CUDA_VISIBLE_DEVICES": "0,1"}, true},
		{"gpu device", map[string]string{"GPU_DEVICE": "/dev/dri/card0"}, true},
		{"empty value still present", map[string]string{"CUDA_VISIBLE_DEVICES": ""}, true},
		{"unrelated", map[string]string{"NVIDIA_DRIVER": "535"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testProbe(1, tt.env).Snapshot().HasGPU)
		})
	}
}

func TestProbe_MemoryFallsBackToMeminfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte("MemTotal:       16384000 kB\nMemFree:  1024 kB\n"), 0o644))

	p := testProbe(0, nil)
	p.meminfoPath = path
	assert.Equal(t, uint64(16384000*1024), p.Snapshot().MemoryTotal)
}

func TestProbe_MemoryDefault(t *testing.T) {
	p := testProbe(0, nil)
	p.meminfoPath = filepath.Join(t.TempDir(), "missing")
	assert.Equal(t, DefaultMemoryTotal, p.Snapshot().MemoryTotal)

	p.meminfoPath = ""
	assert.Equal(t, uint64(8_000_000_000), p.Snapshot().MemoryTotal)
}

func TestMeminfoTotal_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte("MemTotal: lots kB\n"), 0o644))
	assert.Zero(t, meminfoTotal(path))
}

func TestNewProbe_Live(t *testing.T) {
	snap := NewProbe().Snapshot()
	assert.Greater(t, snap.MemoryTotal, uint64(0))
	assert.Greater(t, snap.CPUCount, 0)
}
