package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dillipbehera-ai/hadoop/internal/config"
	"github.com/dillipbehera-ai/hadoop/internal/report"
)

type Server struct {
	router    *gin.Engine
	generator *report.Generator
	config    *config.Config
}

func NewServer(cfg *config.Config, generator *report.Generator) (*Server, error) {
	if generator == nil {
		return nil, errors.New("api: nil generator")
	}

	r := gin.New()
	s := &Server{
		router:    r,
		generator: generator,
		config:    cfg,
	}
	s.registerMiddleware()
	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
