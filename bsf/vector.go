package bsf

import (
	"encoding/json"
	"fmt"
)

// NewVector returns an all-zero GF(2) vector of length n.
// Complexity: O(n).
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// IsZero reports whether every entry of v is zero.
// Complexity: O(n).
func (v Vector) IsZero() bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}

	return true
}

// Weight returns the Hamming weight of v (number of set entries).
// Complexity: O(n).
func (v Vector) Weight() int {
	w := 0
	for _, b := range v {
		if b != 0 {
			w++
		}
	}

	return w
}

// XorInPlace adds o into v over GF(2) (entrywise XOR).
// Returns ErrDimensionMismatch if lengths differ.
// Complexity: O(n).
func (v Vector) XorInPlace(o Vector) error {
	if len(v) != len(o) {
		return ErrDimensionMismatch
	}
	for i := range v {
		v[i] ^= o[i]
	}

	return nil
}

// Xor returns a+b over GF(2) without modifying the operands.
// Returns ErrDimensionMismatch if lengths differ.
// Complexity: O(n).
func Xor(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := a.Clone()
	_ = out.XorInPlace(b)

	return out, nil
}

// XPart returns the first half of a binary-symplectic vector (X-support).
// The returned slice aliases v. Returns ErrOddLength for odd-length vectors.
func (v Vector) XPart() (Vector, error) {
	if len(v)%2 != 0 {
		return nil, ErrOddLength
	}

	return v[:len(v)/2], nil
}

// ZPart returns the second half of a binary-symplectic vector (Z-support).
// The returned slice aliases v. Returns ErrOddLength for odd-length vectors.
func (v Vector) ZPart() (Vector, error) {
	if len(v)%2 != 0 {
		return nil, ErrOddLength
	}

	return v[len(v)/2:], nil
}

// MarshalJSON renders v as a JSON array of 0/1 integers instead of the
// base64 string Go uses for byte slices.
func (v Vector) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2*len(v)+2)
	buf = append(buf, '[')
	for i, b := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		if b != 0 {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	buf = append(buf, ']')

	return buf, nil
}

// UnmarshalJSON parses a JSON array of 0/1 integers.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var bits []int
	if err := json.Unmarshal(data, &bits); err != nil {
		return fmt.Errorf("bsf: vector: %w", err)
	}
	out := make(Vector, len(bits))
	for i, b := range bits {
		if b != 0 && b != 1 {
			return fmt.Errorf("bsf: vector entry %d is %d, want 0 or 1", i, b)
		}
		out[i] = uint8(b)
	}
	*v = out

	return nil
}

// SymplecticProduct computes ⟨a,b⟩ = a_x·b_z + a_z·b_x (mod 2).
// The result is 0 when the two Pauli operators commute and 1 when they
// anticommute. Both vectors must share the same even length.
// Complexity: O(n).
func SymplecticProduct(a, b Vector) (uint8, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a)%2 != 0 {
		return 0, ErrOddLength
	}
	n := len(a) / 2
	var acc uint8
	for i := 0; i < n; i++ {
		acc ^= a[i] & b[n+i] // a_x · b_z
		acc ^= a[n+i] & b[i] // a_z · b_x
	}

	return acc, nil
}
