package logical

import (
	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/syndrome"
)

// InCodespace reports whether e commutes with every stabilizer generator,
// i.e. has trivial syndrome.
func InCodespace(c *code.Code, e bsf.Vector) (bool, error) {
	s, err := syndrome.Measure(c, e)
	if err != nil {
		return false, err
	}

	return s.IsZero(), nil
}

// LogicalErrors returns the length-2k vector of symplectic products of e
// with the code's logical operators, X logicals first, then Z logicals.
// Bit i set means e anticommutes with logical i. For an in-codespace
// residual, a set bit in the X half witnesses an effective Z-type logical
// error and vice versa.
//
// Complexity: O(k·n).
func LogicalErrors(c *code.Code, e bsf.Vector) (bsf.Vector, error) {
	out := bsf.NewVector(2 * c.K)
	for i, lx := range c.LogicalsX {
		p, err := bsf.SymplecticProduct(lx, e)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	for i, lz := range c.LogicalsZ {
		p, err := bsf.SymplecticProduct(lz, e)
		if err != nil {
			return nil, err
		}
		out[c.K+i] = p
	}

	return out, nil
}

// Success reports whether correction undoes error up to a stabilizer: the
// residual correction·error must be in the codespace and commute with all
// logicals.
func Success(c *code.Code, correction, e bsf.Vector) (bool, error) {
	residual, err := bsf.Xor(correction, e)
	if err != nil {
		return false, err
	}
	ok, err := InCodespace(c, residual)
	if err != nil || !ok {
		return false, err
	}
	effects, err := LogicalErrors(c, residual)
	if err != nil {
		return false, err
	}

	return effects.IsZero(), nil
}
