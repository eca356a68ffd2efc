package optim

import (
	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// SGD implements plain gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Velocities are keyed by parameter, so one SGD can step several parameter
// groups (weights, then biases) in separate calls.
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[*matrix.Matrix]*matrix.Matrix
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step, mutating params.
func (s *SGD) Step(params, grads []*matrix.Matrix) error {
	if err := validateStep(params, grads); err != nil {
		return err
	}

	for i, param := range params {
		update := grads[i]
		if s.momentum != 0 {
			update = s.velocity(param, update)
		}
		// Shapes were validated above.
		_ = param.SubInPlace(update.Clone().Scale(s.lr))
	}
	return nil
}

// velocity advances and returns the momentum buffer of param.
func (s *SGD) velocity(param, grad *matrix.Matrix) *matrix.Matrix {
	if s.velocities == nil {
		s.velocities = make(map[*matrix.Matrix]*matrix.Matrix)
	}
	v, ok := s.velocities[param]
	if !ok {
		v = grad.Clone()
		s.velocities[param] = v
		return v
	}
	_ = v.Scale(s.momentum).AddInPlace(grad)
	return v
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// Reset drops accumulated momentum.
func (s *SGD) Reset() {
	s.velocities = nil
}
