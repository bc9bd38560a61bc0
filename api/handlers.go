package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, maxBodyBytes int64, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo(), maxBodyBytes),
		healthHandler:  newHealthHandler(database, startupTime),
	}
}
