package api

import (
	"errors"
	"os"
	"strings"
)

func (s *Server) registerRoutes() error {
	if s == nil || s.router == nil {
		return nil
	}

	api := s.router.Group("/api")
	apiKey := strings.TrimSpace(os.Getenv("LOG_TRIAGE_API_KEY"))
	if apiKey != "" {
		api.Use(apiKeyAuthMiddleware(apiKey))
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_TRIAGE_DISABLE_AUTH")), "true") {
		// Explicitly allow unauthenticated access.
	} else {
		return errors.New("api: missing auth configuration: set LOG_TRIAGE_API_KEY or set LOG_TRIAGE_DISABLE_AUTH=true")
	}

	api.GET("/health", s.handleHealth)

	// Failure report generation from posted log text.
	api.POST("/report", s.handleReport)

	// Read-only view of the built-in failure signature table.
	api.GET("/patterns", s.handleListPatterns)

	return nil
}
