package syndrome

import (
	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
)

// Measure computes the full syndrome of error e on c, one bit per
// stabilizer generator.
//
// Complexity: O(nnz(H)).
func Measure(c *code.Code, e bsf.Vector) (bsf.Vector, error) {
	return c.CheckMatrix().MulVec(e)
}

// ExtractX returns the sub-syndrome of the X-type stabilizers, in
// stabilizer enumeration order. On a CSS code these are the bits that
// detect Z errors.
func ExtractX(c *code.Code, s bsf.Vector) (bsf.Vector, error) {
	return extract(c, s, code.PauliX)
}

// ExtractZ returns the sub-syndrome of the Z-type stabilizers.
func ExtractZ(c *code.Code, s bsf.Vector) (bsf.Vector, error) {
	return extract(c, s, code.PauliZ)
}

func extract(c *code.Code, s bsf.Vector, typ code.Pauli) (bsf.Vector, error) {
	if len(s) != c.NumStabilizers() {
		return nil, bsf.ErrDimensionMismatch
	}

	var sub bsf.Vector
	for i, stab := range c.Stabilizers {
		if stab.Type == typ {
			sub = append(sub, s[i])
		}
	}

	return sub, nil
}

// Indices returns the positions of the stabilizers of the given type, in
// enumeration order: ExtractX(c, s)[j] == s[Indices(c, PauliX)[j]].
func Indices(c *code.Code, typ code.Pauli) []int {
	var idx []int
	for i, stab := range c.Stabilizers {
		if stab.Type == typ {
			idx = append(idx, i)
		}
	}

	return idx
}
