package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedforward-ml/feedforward/internal/network"
)

type trainRequest struct {
	Examples []network.Example `json:"examples" binding:"required"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleModel(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"id":          s.opts.ModelID,
		"config":      s.net.Config(),
		"sizes":       s.net.Sizes(),
		"kind":        s.net.Kind(),
		"input_keys":  s.net.InputKeys(),
		"output_keys": s.net.OutputKeys(),
		"initialized": s.net.Initialized(),
		"trained":     s.net.Trained(),
	})
}

func (s *Server) handleSave(c *gin.Context) {
	if s.opts.ModelPath == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "no model path configured"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	header, err := s.saveModel()
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("model saved", "path", s.opts.ModelPath, "tensors", len(header.Tensors))
	c.JSON(http.StatusOK, gin.H{"id": header.ModelID, "path": s.opts.ModelPath, "created_at": header.CreatedAt})
}

func (s *Server) handleInitialize(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.net.Initialize(); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sizes": s.net.Sizes()})
}

func (s *Server) handleRun(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := network.DecodeSample(body)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.net.Run(in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"output": out})
}

func (s *Server) handleTrain(c *gin.Context) {
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cost, err := s.net.Train(req.Examples)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info("trained", "examples", len(req.Examples), "iterations", s.net.Iterations(), "cost", cost)
	c.JSON(http.StatusOK, gin.H{"cost": cost, "iterations": s.net.Iterations()})
}

func (s *Server) handleGetState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, s.net.Save())
}

func (s *Server) handlePutState(c *gin.Context) {
	var state network.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.net.Load(state); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
