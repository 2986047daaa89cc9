package code

// Deformation is a local Clifford permutation of Pauli labels applied to
// every qubit on the deformed axis. Because it is applied identically to
// stabilizer supports, logical operators and (in package noise) error
// sampling, all commutation invariants survive the deformation.
type Deformation int

const (
	// DeformationNone leaves the code untouched.
	DeformationNone Deformation = iota
	// DeformationXZZX exchanges X and Z on deformed qubits (XZZX codes).
	DeformationXZZX
	// DeformationXY exchanges Y and Z on deformed qubits (XY codes).
	DeformationXY
)

// String returns the deformation name used in requests and input files.
func (d Deformation) String() string {
	switch d {
	case DeformationXZZX:
		return "xzzx"
	case DeformationXY:
		return "xy"
	default:
		return "none"
	}
}

// ParseDeformation maps a request string to a Deformation.
// Unknown strings map to DeformationNone and ok=false.
func ParseDeformation(s string) (Deformation, bool) {
	switch s {
	case "", "none":
		return DeformationNone, true
	case "xzzx":
		return DeformationXZZX, true
	case "xy":
		return DeformationXY, true
	default:
		return DeformationNone, false
	}
}

// Apply permutes a single Pauli label.
func (d Deformation) Apply(p Pauli) Pauli {
	switch d {
	case DeformationXZZX:
		switch p {
		case PauliX:
			return PauliZ
		case PauliZ:
			return PauliX
		}
	case DeformationXY:
		switch p {
		case PauliY:
			return PauliZ
		case PauliZ:
			return PauliY
		}
	}

	return p
}

// defaultDeformedAxis is the per-family deformed-axis table. Keeping it as
// explicit data (rather than re-deriving it per call) is what guarantees the
// error model and the parity-check construction always agree on which
// qubits are deformed.
var defaultDeformedAxis = map[string]Axis{
	"Toric2DCode":         AxisX,
	"Planar2DCode":        AxisX,
	"RotatedPlanar2DCode": AxisX,
	"Toric3DCode":         AxisZ,
	"Planar3DCode":        AxisZ,
	"RhombicCode":         AxisZ,
	"XCubeCode":           AxisZ,
}

// deformBits rewrites the (x,z) bit pair of one qubit inside a
// binary-symplectic vector according to the deformation.
func (d Deformation) deformBits(v []uint8, q, n int) {
	x, z := v[q], v[n+q]
	switch d {
	case DeformationXZZX:
		v[q], v[n+q] = z, x
	case DeformationXY:
		// X=(1,0) fixed; Y=(1,1) ↔ Z=(0,1): new x-bit is x XOR z.
		v[q], v[n+q] = x^z, z
	}
}
