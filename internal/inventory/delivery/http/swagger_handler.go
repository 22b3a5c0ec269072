package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for Inventory Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity. Redis and Kafka are reported but never fail the check.
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func HealthCheckDoc() {}
