package matrix

import (
	"math/rand/v2"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// uniform draws values in [0, 1). It is shared by every Randomize call in the
// process, so access goes through uniformMu.
var (
	uniformMu sync.Mutex
	uniform   = newUniform(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
)

func newUniform(src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}

// Seed makes subsequent Randomize calls deterministic.
func Seed(seed uint64) {
	SetRandSource(rand.NewPCG(seed, seed))
}

// SetRandSource replaces the process-wide random source used by Randomize.
func SetRandSource(src rand.Source) {
	uniformMu.Lock()
	uniform = newUniform(src)
	uniformMu.Unlock()
}

// Randomize overwrites every element with an independent uniform draw in [0, 1).
func (m *Matrix) Randomize() *Matrix {
	uniformMu.Lock()
	defer uniformMu.Unlock()
	for i := range m.data {
		m.data[i] = uniform.Rand()
	}
	return m
}
