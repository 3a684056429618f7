package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	// The home snapshot, with and without a path-embedded language prefix.
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/:lang/", s.homeHandler.HomeGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
