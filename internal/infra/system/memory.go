package system

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// DefaultMemoryTotal is reported when the host memory cannot be read.
const DefaultMemoryTotal uint64 = 8_000_000_000

func (p *Probe) memoryTotal() uint64 {
	if total := p.totalMemory(); total > 0 {
		return total
	}
	if total := meminfoTotal(p.meminfoPath); total > 0 {
		return total
	}
	return DefaultMemoryTotal
}

// meminfoTotal reads MemTotal from a /proc/meminfo style file, in bytes.
func meminfoTotal(path string) uint64 {
	if path == "" {
		return 0
	}
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kb * 1024
	}
	return 0
}
