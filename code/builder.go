package code

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stabsim/bsf"
)

// Options configures code construction.
//
// Deformation  – Pauli permutation baked into H and the logicals.
// DeformedAxis – which edge axis carries the permutation; AxisAuto picks the
// per-family default from the deformation table.
// Rotated      – select the rotated variant of the requested family.
type Options struct {
	Deformation  Deformation
	DeformedAxis Axis
	Rotated      bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithDeformation selects the Pauli deformation baked into the code.
func WithDeformation(d Deformation) Option {
	return func(o *Options) { o.Deformation = d }
}

// WithDeformedAxis overrides the per-family default deformed axis.
func WithDeformedAxis(a Axis) Option {
	return func(o *Options) { o.DeformedAxis = a }
}

// WithRotated selects the rotated variant of the requested family.
func WithRotated() Option {
	return func(o *Options) { o.Rotated = true }
}

// DefaultOptions returns the zero configuration: undeformed, automatic
// deformed axis, unrotated.
func DefaultOptions() Options {
	return Options{
		Deformation:  DeformationNone,
		DeformedAxis: AxisAuto,
		Rotated:      false,
	}
}

// family describes one registry entry. build receives validated sizes and
// returns the undeformed lattice, stabilizers, logicals and parameters;
// deformation is applied uniformly afterwards.
type family struct {
	dimension int
	minSize   int
	evenOnly  bool
	build     func(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error)
}

// Family names accepted by Build.
const (
	Toric2D         = "Toric2DCode"
	Planar2D        = "Planar2DCode"
	RotatedPlanar2D = "RotatedPlanar2DCode"
	Toric3D         = "Toric3DCode"
	Planar3D        = "Planar3DCode"
	Rhombic         = "RhombicCode"
	XCube           = "XCubeCode"
)

// families is the closed registry of supported code families.
var families = map[string]family{
	Toric2D:         {dimension: 2, minSize: 2, build: buildToric2D},
	Planar2D:        {dimension: 2, minSize: 2, build: buildPlanar2D},
	RotatedPlanar2D: {dimension: 2, minSize: 2, build: buildRotatedPlanar2D},
	Toric3D:         {dimension: 3, minSize: 2, build: buildToric3D},
	Planar3D:        {dimension: 3, minSize: 2, build: buildPlanar3D},
	Rhombic:         {dimension: 3, minSize: 2, evenOnly: true, build: buildRhombic},
	XCube:           {dimension: 3, minSize: 2, build: buildXCube},
}

// List returns the sorted family names for the given dimension (2 or 3);
// any other dimension lists every family.
func List(dimension int) []string {
	names := make([]string, 0, len(families))
	for name, f := range families {
		if dimension == 2 || dimension == 3 {
			if f.dimension != dimension {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Build constructs a Code by family name and lattice dimensions. For 2D
// families Lz is ignored. Validation order:
//  1. The (possibly rotated) family must exist: ErrUnknownFamily.
//  2. Every used dimension must be ≥ the family minimum, and even where the
//     family requires it: ErrInvalidLatticeSize.
//
// The result is immutable and safe for concurrent read-only use.
func Build(name string, Lx, Ly, Lz int, opts ...Option) (*Code, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rotated {
		name = "Rotated" + name
	}

	f, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}

	size := [3]int{Lx, Ly, Lz}
	dims := 2
	if f.dimension == 3 {
		dims = 3
	} else {
		size[2] = 1
	}
	for a := 0; a < dims; a++ {
		if size[a] < f.minSize {
			return nil, fmt.Errorf("%w: %s needs L ≥ %d, got %v", ErrInvalidLatticeSize, name, f.minSize, size[a])
		}
		if f.evenOnly && size[a]%2 != 0 {
			return nil, fmt.Errorf("%w: %s needs even sizes, got %v", ErrInvalidLatticeSize, name, size[a])
		}
	}

	l, stabs, logicalX, logicalZ, err := f.build(size)
	if err != nil {
		return nil, err
	}

	return finalize(name, f.dimension, size, l, stabs, logicalX, logicalZ, cfg)
}

// finalize assembles the Code: applies the deformation to stabilizer
// supports and logicals, then derives H and the decoding check matrix.
func finalize(name string, dimension int, size [3]int, l *lattice, stabs []Stabilizer, logicalX, logicalZ []*pauliOp, cfg Options) (*Code, error) {
	n := len(l.qubits)
	k := len(logicalX)

	axis := cfg.DeformedAxis
	if cfg.Deformation != DeformationNone && axis == AxisAuto {
		axis = defaultDeformedAxis[name]
	}

	c := &Code{
		Name:         name,
		Dimension:    dimension,
		Size:         size,
		N:            n,
		K:            k,
		D:            minUsedSize(size, dimension),
		Qubits:       l.qubits,
		Stabilizers:  stabs,
		Deformation:  cfg.Deformation,
		DeformedAxis: axis,
		qubitIndex:   l.index,
	}

	// Deform stabilizer supports in place.
	if cfg.Deformation != DeformationNone {
		for si := range c.Stabilizers {
			sup := c.Stabilizers[si].Support
			for i := range sup {
				if c.Qubits[sup[i].Qubit].Axis == axis {
					sup[i].Pauli = cfg.Deformation.Apply(sup[i].Pauli)
				}
			}
		}
	}

	// Deform logicals and collect their vectors.
	deformVec := func(op *pauliOp) []uint8 {
		v := op.vector()
		if cfg.Deformation != DeformationNone {
			for q := 0; q < n; q++ {
				if c.Qubits[q].Axis == axis {
					cfg.Deformation.deformBits(v, q, n)
				}
			}
		}

		return v
	}
	for _, op := range logicalX {
		c.LogicalsX = append(c.LogicalsX, deformVec(op))
	}
	for _, op := range logicalZ {
		c.LogicalsZ = append(c.LogicalsZ, deformVec(op))
	}

	// Assemble H from the (deformed) supports. Indices are in range by
	// construction, so Set errors are ignored.
	h := bsf.NewMatrix(len(c.Stabilizers), 2*c.N)
	for si, s := range c.Stabilizers {
		for _, site := range s.Support {
			if site.Pauli == PauliX || site.Pauli == PauliY {
				_ = h.Set(si, site.Qubit)
			}
			if site.Pauli == PauliZ || site.Pauli == PauliY {
				_ = h.Set(si, c.N+site.Qubit)
			}
		}
	}
	check, err := h.SwapHalves()
	if err != nil {
		return nil, err
	}
	c.h = h
	c.check = check

	return c, nil
}

func minUsedSize(size [3]int, dimension int) int {
	d := size[0]
	limit := 2
	if dimension == 3 {
		limit = 3
	}
	for a := 1; a < limit; a++ {
		if size[a] < d {
			d = size[a]
		}
	}

	return d
}
