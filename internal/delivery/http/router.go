package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"techevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /api/v1/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/v1/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/v1/events/{id}", eventController.GetEventByID)
	mux.HandleFunc("PUT /api/v1/events/{id}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/v1/events/{id}", eventController.DeleteEvent)

	// Health
	mux.HandleFunc("GET /health", healthController.Health)
	mux.HandleFunc("GET /{$}", healthController.Root)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
