package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// minWriteTimeout bounds slow handlers when probes are short.
const minWriteTimeout = 30 * time.Second

// NewServer builds the command API server. The write timeout leaves room for
// a full round of health probes bounded by probeTimeout.
func NewServer(listen string, api *API, token string, probeTimeout time.Duration, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              listen,
			Handler:           NewRouter(api, token, logger),
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      writeTimeout(probeTimeout),
			IdleTimeout:       60 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func writeTimeout(probeTimeout time.Duration) time.Duration {
	if t := probeTimeout + 10*time.Second; t > minWriteTimeout {
		return t
	}
	return minWriteTimeout
}

// NewRouter builds the gin engine serving the command API.
func NewRouter(api *API, token string, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(requestRecoveryWithLog(logger)))
	router.Use(requestLogger(logger))
	if token != "" {
		router.Use(authMiddleware(token))
	}
	api.RegisterRoutes(router)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
