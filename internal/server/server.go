// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package server exposes the engine over HTTP for editor integrations.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/specialistvlad/jsdmbrs/internal/ctxlog"
	"github.com/specialistvlad/jsdmbrs/internal/diag"
	"github.com/specialistvlad/jsdmbrs/internal/engine"
	"github.com/specialistvlad/jsdmbrs/internal/export"
	"github.com/specialistvlad/jsdmbrs/internal/syntax"
)

func init() {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// Server serves generation requests.
type Server struct {
	engine *engine.Engine
	logger *slog.Logger
	router *gin.Engine
}

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	Filename string `json:"filename"`
	Source   string `json:"source" binding:"required"`
}

// GenerateResponse wraps the engine response with the exported model.
type GenerateResponse struct {
	*diag.Response
	Model *export.Document `json:"model,omitempty"`
}

// New creates a Server that logs to logger.
func New(eng *engine.Engine, logger *slog.Logger) *Server {
	s := &Server{engine: eng, logger: logger, router: gin.New()}
	s.router.Use(gin.Recovery(), s.logRequests)
	s.router.GET("/health", s.health)
	v1 := s.router.Group("/v1")
	{
		v1.GET("/grammar", s.grammar)
		v1.POST("/generate", s.generate)
	}
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("Request served.",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"remote_addr", c.Request.RemoteAddr,
	)
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "OK\n")
}

func (s *Server) grammar(c *gin.Context) {
	c.String(http.StatusOK, syntax.Grammar())
}

func (s *Server) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": diag.StatusError, "errorMsg": err.Error()})
		return
	}
	if req.Filename == "" {
		req.Filename = "model" + syntax.FileExtension
	}

	ctx := ctxlog.WithLogger(c.Request.Context(), s.logger)
	resp := s.engine.Generate(ctx, req.Filename, []byte(req.Source))

	out := GenerateResponse{Response: resp}
	status := http.StatusOK
	if resp.Failed() {
		status = http.StatusUnprocessableEntity
	} else {
		out.Model = export.NewDocument(resp.Model)
	}
	c.JSON(status, out)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout. ready, if not nil, receives the bound address once
// the listener is open.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration, ready chan<- string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting.", "address", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server shutdown failed.", "error", err)
		return err
	}
	s.logger.Debug("Server shut down gracefully.")
	return nil
}
