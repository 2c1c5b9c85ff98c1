package system

// gpuEnvVars are checked for presence only; an empty value still counts.
// Hosts with a GPU but none of these set are reported as GPU-less.
var gpuEnvVars = []string{"CUDA_VISIBLE_DEVICES", "GPU_DEVICE"}

func (p *Probe) hasGPU() bool {
	for _, name := range gpuEnvVars {
		if _, ok := p.lookupEnv(name); ok {
			return true
		}
	}
	return false
}
