package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		database:    database,
		startupTime: startupTime,
	}
}

// health reports liveness and whether the database answers
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse "Database unavailable"
// @Router /healthz [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.database.Ping(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, HealthResponse{
			Status:   "ok",
			Database: "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
