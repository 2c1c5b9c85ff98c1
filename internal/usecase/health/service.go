package health

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/stratmaster/desktopd/internal/domain"
	"github.com/stratmaster/desktopd/internal/impls"
)

// Endpoints returns the fixed table of local services. Only the api entry
// follows the configured base URL.
func Endpoints(baseURL string) []domain.ServiceEndpoint {
	return []domain.ServiceEndpoint{
		{Name: "api", URL: strings.TrimRight(baseURL, "/") + "/healthz"},
		{Name: "research-mcp", URL: "http://localhost:8081/health"},
		{Name: "knowledge-mcp", URL: "http://localhost:8082/health"},
		{Name: "router-mcp", URL: "http://localhost:8083/health"},
	}
}

// Service aggregates health probes. It holds no state apart from the last
// local status result; every call probes again.
type Service struct {
	client impls.HealthClient
	config impls.RuntimeConfig
	logger *slog.Logger

	mu   sync.Mutex
	last domain.ServiceHealthMap
}

func NewService(client impls.HealthClient, config impls.RuntimeConfig, logger *slog.Logger) *Service {
	return &Service{client: client, config: config, logger: logger}
}

// CheckAll probes every endpoint concurrently and never fails. Failed,
// timed out and non-2xx probes are all reported as false. When two endpoints
// share a name the later one in the list wins.
func (s *Service) CheckAll(ctx context.Context, endpoints []domain.ServiceEndpoint) domain.ServiceHealthMap {
	results := make([]bool, len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range endpoints {
		g.Go(func() error {
			results[i] = s.client.Probe(gctx, ep.URL)
			return nil
		})
	}
	// Probes report failure as false, so Wait only joins.
	_ = g.Wait()

	status := make(domain.ServiceHealthMap, len(endpoints))
	for i, ep := range endpoints {
		status[ep.Name] = results[i]
	}
	return status
}

// LocalServerStatus probes the fixed endpoint table and remembers the result.
func (s *Service) LocalServerStatus(ctx context.Context) domain.ServiceHealthMap {
	status := s.CheckAll(ctx, Endpoints(s.config.BaseURL()))

	down := 0
	for _, ok := range status {
		if !ok {
			down++
		}
	}
	s.logger.DebugContext(ctx, "local server status", "services", len(status), "down", down)

	s.mu.Lock()
	s.last = maps.Clone(status)
	s.mu.Unlock()

	return status
}

// LastStatus returns a copy of the most recent LocalServerStatus result, or
// an empty map if none has run yet.
func (s *Service) LastStatus() domain.ServiceHealthMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return domain.ServiceHealthMap{}
	}
	return maps.Clone(s.last)
}

// CheckPrimary runs a single structured health check against the configured
// base URL. Errors are domain.ErrConnection or domain.ErrParse.
func (s *Service) CheckPrimary(ctx context.Context) (domain.PrimaryHealthReport, error) {
	baseURL := s.config.BaseURL()
	s.logger.InfoContext(ctx, "checking api health", "base_url", baseURL)

	report, err := s.client.Primary(ctx, baseURL)
	if err != nil {
		s.logger.WarnContext(ctx, "api health check failed", "base_url", baseURL, "err", err)
		return domain.PrimaryHealthReport{}, err
	}

	s.logger.InfoContext(ctx, "api health check successful", "status", report.Status, "services", len(report.Services))
	return report, nil
}

// SetBaseURL replaces the primary API base URL without validating it.
func (s *Service) SetBaseURL(url string) {
	s.logger.Info("setting api base url", "url", url)
	s.config.SetBaseURL(url)
}

func (s *Service) BaseURL() string {
	return s.config.BaseURL()
}
