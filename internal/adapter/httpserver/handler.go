package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stratmaster/desktopd/internal/config"
	"github.com/stratmaster/desktopd/internal/domain"
	"github.com/stratmaster/desktopd/internal/impls"
	healthuc "github.com/stratmaster/desktopd/internal/usecase/health"
	"github.com/stratmaster/desktopd/internal/usecase/profile"
)

type response struct {
	Ok    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type baseURLRequest struct {
	URL string `json:"url"`
}

type openURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type revealRequest struct {
	Path string `json:"path" binding:"required"`
}

type appDataDirResponse struct {
	Path string `json:"path"`
}

// API serves the closed set of shell commands.
type API struct {
	profile *profile.Service
	health  *healthuc.Service
	desktop impls.Desktop
	cfg     *config.Config
	logger  *slog.Logger
}

func NewAPI(profile *profile.Service, health *healthuc.Service, desktop impls.Desktop, cfg *config.Config, logger *slog.Logger) *API {
	return &API{profile: profile, health: health, desktop: desktop, cfg: cfg, logger: logger}
}

func (a *API) RegisterRoutes(router gin.IRouter) {
	router.GET("/ping", a.ping)
	router.GET("/system-info", a.systemInfo)
	router.GET("/api-health", a.apiHealth)
	router.PUT("/api-base-url", a.setAPIBaseURL)
	router.GET("/local-servers", a.localServers)
	router.GET("/local-servers/last", a.lastLocalServers)
	router.GET("/settings", a.settings)
	router.GET("/app-data-dir", a.appDataDir)
	router.POST("/open-url", a.openURL)
	router.POST("/reveal", a.reveal)
}

func (a *API) ping(c *gin.Context) {
	c.JSON(http.StatusOK, response{Ok: true})
}

func (a *API) systemInfo(c *gin.Context) {
	info := a.profile.SystemInfo(c.Request.Context())
	c.JSON(http.StatusOK, response{Ok: true, Data: info})
}

func (a *API) apiHealth(c *gin.Context) {
	report, err := a.health.CheckPrimary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response{Ok: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response{Ok: true, Data: report})
}

func (a *API) setAPIBaseURL(c *gin.Context) {
	var req baseURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn("set api base url: invalid payload", "err", err)
		c.JSON(http.StatusBadRequest, response{Ok: false, Error: err.Error()})
		return
	}
	a.health.SetBaseURL(req.URL)
	c.JSON(http.StatusOK, response{Ok: true})
}

func (a *API) localServers(c *gin.Context) {
	status := a.health.LocalServerStatus(c.Request.Context())
	c.JSON(http.StatusOK, response{Ok: true, Data: status})
}

func (a *API) lastLocalServers(c *gin.Context) {
	c.JSON(http.StatusOK, response{Ok: true, Data: a.health.LastStatus()})
}

func (a *API) settings(c *gin.Context) {
	c.JSON(http.StatusOK, response{Ok: true, Data: a.cfg.Settings(a.health.BaseURL())})
}

func (a *API) appDataDir(c *gin.Context) {
	dir, err := a.desktop.AppDataDir()
	if err != nil {
		a.logger.Error("app data dir failed", "err", err)
		c.JSON(http.StatusInternalServerError, response{Ok: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response{Ok: true, Data: appDataDirResponse{Path: dir}})
}

func (a *API) openURL(c *gin.Context) {
	var req openURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn("open url: invalid payload", "err", err)
		c.JSON(http.StatusBadRequest, response{Ok: false, Error: err.Error()})
		return
	}
	if err := a.desktop.OpenURL(req.URL); err != nil {
		a.logger.Error("open url failed", "err", err)
		c.JSON(http.StatusInternalServerError, response{Ok: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response{Ok: true})
}

func (a *API) reveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn("reveal: invalid payload", "err", err)
		c.JSON(http.StatusBadRequest, response{Ok: false, Error: err.Error()})
		return
	}

	err := a.desktop.Reveal(req.Path)
	var notFound domain.ErrPathNotFound
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response{Ok: true})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, response{Ok: false, Error: err.Error()})
	default:
		a.logger.Error("reveal failed", "err", err)
		c.JSON(http.StatusInternalServerError, response{Ok: false, Error: err.Error()})
	}
}
