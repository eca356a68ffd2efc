// Package server exposes one network over HTTP with gin.
//
// Routes:
//
//	GET  /healthz      liveness probe
//	GET  /model        id, configuration and field names
//	POST /model/save   write the model file (when a path is configured)
//	POST /initialize   start over with fresh random parameters
//	POST /run          body: a JSON array (vector) or object (record)
//	POST /train        body: {"examples": [{"input": ..., "output": ...}]}
//	GET  /state        weights and biases
//	PUT  /state        replace weights and/or biases
//
// Requests are serialized with a mutex because Run and Train both mutate
// the network.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feedforward-ml/feedforward/internal/network"
	"github.com/feedforward-ml/feedforward/internal/serialization"
)

// Options configures a Server.
type Options struct {
	// ModelID identifies the served model; a random UUID when empty.
	ModelID string
	// ModelPath is where POST /model/save writes the model file.
	ModelPath string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves one network.
type Server struct {
	mu     sync.Mutex
	net    *network.Network
	opts   Options
	logger *slog.Logger
	router *gin.Engine
}

// New wraps net in a Server. net should already be initialized.
func New(net *network.Network, opts Options) *Server {
	if opts.ModelID == "" {
		opts.ModelID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		net:    net,
		opts:   opts,
		logger: logger.With("model_id", opts.ModelID),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))
	router.GET("/healthz", s.handleHealth)
	router.GET("/model", s.handleModel)
	router.POST("/model/save", s.handleSave)
	router.POST("/initialize", s.handleInitialize)
	router.POST("/run", s.handleRun)
	router.POST("/train", s.handleTrain)
	router.GET("/state", s.handleGetState)
	router.PUT("/state", s.handlePutState)
	s.router = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// statusFor maps network errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, network.ErrKindMismatch), errors.Is(err, network.ErrNotInitialized):
		return http.StatusConflict
	case errors.Is(err, network.ErrRun), errors.Is(err, network.ErrTraining),
		errors.Is(err, network.ErrLoad), errors.Is(err, network.ErrInitialization),
		errors.Is(err, network.ErrInvalidSample):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// saveModel writes the current network to the configured path.
func (s *Server) saveModel() (serialization.Header, error) {
	return serialization.SaveFile(s.opts.ModelPath, s.net.Snapshot(), serialization.Options{ModelID: s.opts.ModelID})
}
