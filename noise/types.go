package noise

import "errors"

var (
	// ErrBadDirection reports a Pauli direction with negative components or
	// one that does not sum to one.
	ErrBadDirection = errors.New("noise: direction must be non-negative and sum to 1")

	// ErrBadProbability reports an error rate outside [0, 1].
	ErrBadProbability = errors.New("noise: probability must be in [0, 1]")
)

// directionTolerance bounds the accepted drift of rx+ry+rz from 1.
const directionTolerance = 1e-9

// SiteProbs is the single-qubit Pauli distribution at one site.
type SiteProbs struct {
	I, X, Y, Z float64
}
