package impls

import "github.com/stratmaster/desktopd/internal/domain"

// HostProbe reads the hardware of the local machine.
type HostProbe interface {
	Snapshot() domain.HostSnapshot
}
