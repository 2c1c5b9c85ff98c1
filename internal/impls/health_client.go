package impls

import (
	"context"

	"github.com/stratmaster/desktopd/internal/domain"
)

// HealthClient issues single health requests against local services.
type HealthClient interface {
	Probe(ctx context.Context, url string) bool
	Primary(ctx context.Context, baseURL string) (domain.PrimaryHealthReport, error)
}
