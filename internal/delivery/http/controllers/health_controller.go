package controllers

import (
	"log/slog"
	"net/http"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/domain"
)

// HealthResponse is the data payload for GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RootResponse is the data payload for GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

type HealthController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Name    string
	Version string
}

func NewHealthController(logger *slog.Logger, svc domain.EventService, name, version string) *HealthController {
	return &HealthController{
		Logger:  logger,
		Service: svc,
		Name:    name,
		Version: version,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports healthy when the process can reach the database.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.HealthCheck(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}

// Root godoc
// @Summary Service info
// @Description Basic API information and documentation links.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.RootResponse
// @Router / [get]
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, RootResponse{
		Message: c.Name,
		Version: c.Version,
		Status:  "running",
		Docs:    "/swagger/index.html",
	})
}
