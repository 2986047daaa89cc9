package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
)

// PauliModel is an IID Pauli channel with a fixed error direction.
// The zero value is unusable; construct with NewPauliModel.
type PauliModel struct {
	rx, ry, rz float64
}

// NewPauliModel validates the direction (rx, ry, rz) and returns the model.
// Common directions: (1,0,0) bit-flip, (0,0,1) phase-flip, (1/3,1/3,1/3)
// depolarizing.
func NewPauliModel(rx, ry, rz float64) (*PauliModel, error) {
	if rx < 0 || ry < 0 || rz < 0 || math.Abs(rx+ry+rz-1) > directionTolerance {
		return nil, fmt.Errorf("%w: (%v, %v, %v)", ErrBadDirection, rx, ry, rz)
	}

	return &PauliModel{rx: rx, ry: ry, rz: rz}, nil
}

// Direction returns the (rx, ry, rz) rates the model was built with.
func (m *PauliModel) Direction() (rx, ry, rz float64) { return m.rx, m.ry, m.rz }

// String labels the model for logs and result records.
func (m *PauliModel) String() string {
	return fmt.Sprintf("Pauli X%.4f Y%.4f Z%.4f", m.rx, m.ry, m.rz)
}

// Distribution returns the per-qubit Pauli distribution of the channel on
// c at error rate p. On deformed qubits the X/Y/Z rates are permuted by
// the code's deformation, matching the permutation baked into H.
//
// Complexity: O(n).
func (m *PauliModel) Distribution(c *code.Code, p float64) ([]SiteProbs, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, p)
	}

	dist := make([]SiteProbs, c.N)
	for q := 0; q < c.N; q++ {
		px, py, pz := p*m.rx, p*m.ry, p*m.rz
		if c.IsDeformed(q) {
			switch c.Deformation {
			case code.DeformationXZZX:
				px, pz = pz, px
			case code.DeformationXY:
				py, pz = pz, py
			}
		}
		dist[q] = SiteProbs{I: 1 - p, X: px, Y: py, Z: pz}
	}

	return dist, nil
}

// Generate samples one error operator on c at rate p, as a length-2n
// binary symplectic vector. Each qubit consumes exactly one rng draw, so
// a fixed seed reproduces the same error regardless of outcome.
//
// Complexity: O(n).
func (m *PauliModel) Generate(c *code.Code, p float64, rng *rand.Rand) (bsf.Vector, error) {
	dist, err := m.Distribution(c, p)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	e := bsf.NewVector(2 * c.N)
	for q := 0; q < c.N; q++ {
		u := rng.Float64()
		switch d := dist[q]; {
		case u < d.X:
			e[q] = 1
		case u < d.X+d.Y:
			e[q] = 1
			e[c.N+q] = 1
		case u < d.X+d.Y+d.Z:
			e[c.N+q] = 1
		}
	}

	return e, nil
}

// FlipProbabilities returns the length-2n marginal flip probabilities of
// the channel, in the same bit order as the error vectors: the X half
// flips with P(X)+P(Y), the Z half with P(Z)+P(Y). Belief-propagation
// decoders use these as channel priors.
func (m *PauliModel) FlipProbabilities(c *code.Code, p float64) ([]float64, error) {
	dist, err := m.Distribution(c, p)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, 2*c.N)
	for q, d := range dist {
		probs[q] = d.X + d.Y
		probs[c.N+q] = d.Z + d.Y
	}

	return probs, nil
}
