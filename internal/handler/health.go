// Package handler defines the HTTP handlers. Each handler bundles the
// repositories it needs, validates the payload, and maps repository sentinel
// errors onto the uniform response envelope.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
