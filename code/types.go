// Package code defines core types, options, and sentinel errors for
// stabilizer-code construction.
package code

import (
	"errors"

	"github.com/katalvlaran/stabsim/bsf"
)

// Sentinel errors for code construction.
var (
	// ErrUnknownFamily indicates a code-family name absent from the registry.
	ErrUnknownFamily = errors.New("code: unknown code family")
	// ErrInvalidLatticeSize indicates lattice dimensions below the family
	// minimum, or odd dimensions for a family that requires even ones.
	ErrInvalidLatticeSize = errors.New("code: invalid lattice size")
	// ErrNotAQubit indicates a lattice location that does not hold a qubit.
	ErrNotAQubit = errors.New("code: location does not correspond to a qubit")
)

// Pauli labels a single-qubit Pauli operator.
type Pauli uint8

const (
	// PauliI is the identity.
	PauliI Pauli = iota
	// PauliX flips the qubit in the computational basis.
	PauliX
	// PauliY is the product of X and Z (both symplectic bits set).
	PauliY
	// PauliZ flips the qubit phase.
	PauliZ
)

// String returns the one-letter Pauli label.
func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "I"
	}
}

// Axis identifies a lattice direction; edge qubits carry the axis of the
// edge they sit on, and deformations select qubits by axis.
type Axis int

const (
	// AxisAuto defers the deformed-axis choice to the per-family default table.
	AxisAuto Axis = iota - 1
	// AxisX is the first lattice direction.
	AxisX
	// AxisY is the second lattice direction.
	AxisY
	// AxisZ is the third lattice direction (3D families only).
	AxisZ
)

// String returns the axis letter, or "auto" for AxisAuto.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "auto"
	}
}

// ParseAxis maps a request string to an Axis. Empty and "auto" defer to
// the per-family default; anything else but "x", "y", "z" reports ok=false.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "", "auto":
		return AxisAuto, true
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	default:
		return AxisAuto, false
	}
}

// Kind discriminates stabilizer geometry for rendering and syndrome splits.
type Kind string

const (
	// KindVertex marks a vertex (star) stabilizer.
	KindVertex Kind = "vertex"
	// KindFace marks a face (plaquette) stabilizer.
	KindFace Kind = "face"
	// KindCube marks a weight-12 cube stabilizer (3D fracton-type families).
	KindCube Kind = "cube"
	// KindTriangle marks a weight-3 rhombic triangle stabilizer.
	KindTriangle Kind = "triangle"
	// KindCross marks a planar four-edge cross stabilizer (X-cube model).
	KindCross Kind = "cross"
)

// Qubit is one physical qubit: its doubled-lattice location and edge axis.
type Qubit struct {
	Location [3]int
	Axis     Axis
}

// Site is one entry of a stabilizer support: a qubit index and the Pauli
// acting on it (after any deformation).
type Site struct {
	Qubit int
	Pauli Pauli
}

// Stabilizer is one generator: its location, geometric kind, native Pauli
// type (X or Z for the undeformed CSS split) and support.
// Orientation disambiguates co-located generators: the four triangles per
// rhombic vertex and the three crosses per X-cube vertex.
type Stabilizer struct {
	Location    [3]int
	Kind        Kind
	Type        Pauli
	Orientation int
	Support     []Site
}

// Code is an immutable stabilizer code instance.
type Code struct {
	Name      string
	Dimension int
	Size      [3]int

	// N, K, D are the code parameters: physical qubits, logical qubits,
	// minimum distance.
	N, K, D int

	Qubits      []Qubit
	Stabilizers []Stabilizer

	// LogicalsX and LogicalsZ hold K binary-symplectic rows each;
	// LogicalsX[i] anticommutes with LogicalsZ[i] and commutes with every
	// other logical row and every stabilizer.
	LogicalsX []bsf.Vector
	LogicalsZ []bsf.Vector

	// Deformation and DeformedAxis record the Pauli permutation baked into
	// the stabilizer supports and logicals.
	Deformation  Deformation
	DeformedAxis Axis

	qubitIndex map[[3]int]int
	h          *bsf.Matrix
	check      *bsf.Matrix
}

// H returns the parity-check matrix in binary-symplectic row format:
// one row per stabilizer, columns [0,n) X-support, [n,2n) Z-support.
// The returned matrix is shared and must be treated as read-only.
func (c *Code) H() *bsf.Matrix { return c.h }

// CheckMatrix returns H with swapped halves: multiplying it against an
// error vector yields the syndrome (per-row symplectic products).
// The returned matrix is shared and must be treated as read-only.
func (c *Code) CheckMatrix() *bsf.Matrix { return c.check }

// QubitIndex resolves a lattice location to a qubit index.
func (c *Code) QubitIndex(loc [3]int) (int, bool) {
	i, ok := c.qubitIndex[loc]

	return i, ok
}

// NumStabilizers returns the number of stabilizer generators (rows of H).
func (c *Code) NumStabilizers() int { return len(c.Stabilizers) }

// IsDeformed reports whether qubit q carries the deformation permutation.
func (c *Code) IsDeformed(q int) bool {
	return c.Deformation != DeformationNone && c.Qubits[q].Axis == c.DeformedAxis
}
