package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dillipbehera-ai/hadoop/internal/patterns"
)

type reportRequest struct {
	Log string `json:"log"`
}

type patternEntry struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if s == nil || s.generator == nil {
		respondError(c, http.StatusInternalServerError, errors.New("report generator unavailable"))
		return
	}

	// An empty log is not an error; the generator answers with its
	// fixed sentinel report.
	outcome := s.generator.Generate(c.Request.Context(), req.Log)
	c.JSON(http.StatusOK, outcome)
}

func (s *Server) handleListPatterns(c *gin.Context) {
	rules := patterns.Builtin().Rules()
	out := make([]patternEntry, 0, len(rules))
	for _, r := range rules {
		out = append(out, patternEntry{
			Name:    r.Name,
			Pattern: r.Pattern(),
			Message: r.Message,
		})
	}
	c.JSON(http.StatusOK, out)
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
