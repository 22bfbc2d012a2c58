package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/stayhub/suites-api/internal/handler"
	"github.com/stayhub/suites-api/internal/middleware"
)

// Register wires every route of the API onto the provided Echo instance.
// Reads and the auth endpoints are public; catalog mutations sit behind the
// JWT middleware and require the Admin role. The external authorization
// gate verifies nothing beyond the token signature, expiry and role claim.
func Register(e *echo.Echo, suites *handler.SuiteHandler, amenities *handler.AmenityHandler, auth *handler.AuthHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	a := e.Group("/api/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)

	api := e.Group("/api")
	api.GET("/suites", suites.List)
	api.GET("/suites/:id", suites.GetByID)
	api.GET("/amenities", amenities.List)
	api.GET("/amenities/:id", amenities.GetByID)

	admin := e.Group("/api", middleware.JWTAuth(jwtSecret), middleware.RequireRole("Admin"))
	admin.POST("/suites", suites.Create)
	admin.PUT("/suites/:id", suites.Update)
	admin.DELETE("/suites/:id", suites.Delete)
	admin.POST("/suites/:id/amenities/:amenityId", suites.LinkAmenity)
	admin.DELETE("/suites/:id/amenities/:amenityId", suites.UnlinkAmenity)
	admin.POST("/amenities", amenities.Create)
	admin.PUT("/amenities/:id", amenities.Update)
	admin.DELETE("/amenities/:id", amenities.Delete)
}
