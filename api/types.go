package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"project not found"`
	Field string `json:"field,omitempty" example:"title"`
}

// DeleteResponse confirms a hard delete
type DeleteResponse struct {
	Deleted bool  `json:"deleted" example:"true"`
	ID      int64 `json:"id" example:"42"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Uptime   string `json:"uptime" example:"1h2m3s"`
}
