// Package code builds stabilizer codes from lattice geometry.
//
// A Code is constructed once per (family, size, deformation) tuple and is
// immutable afterwards: it enumerates physical qubits with integer lattice
// coordinates, enumerates stabilizer generators with their Pauli supports,
// and derives the binary-symplectic parity-check matrix H together with a
// symplectic basis of logical operators.
//
// Geometry convention: every family lives on a doubled integer lattice.
// Edge qubits sit at coordinates with exactly one odd component (the edge
// axis), vertices at all-even coordinates, faces at two-odd coordinates and
// cubes at all-odd coordinates. 2D families fix z = 0. Periodic families
// wrap coordinates modulo the lattice extent; open-boundary families simply
// truncate stabilizer supports at the boundary.
//
// Supported families (selected by name through Build):
//
//	Toric2DCode           n = 2·Lx·Ly          k = 2
//	Planar2DCode          n = Lx·Ly+(Lx-1)(Ly-1)  k = 1
//	RotatedPlanar2DCode   n = Lx·Ly            k = 1
//	Toric3DCode           n = 3·Lx·Ly·Lz       k = 3
//	Planar3DCode          rough x-boundaries   k = 1
//	RhombicCode           even sizes only      k = 3
//	XCubeCode             n = 3·Lx·Ly·Lz       k = 2(Lx+Ly+Lz)-3
//
// Deformations (XZZX, XY) permute the physical Pauli acting on every qubit
// whose edge axis equals the deformed axis. The permutation is applied to
// stabilizer supports and logical operators alike, so commutation relations
// are preserved exactly; the same table drives deformed noise sampling in
// package noise.
//
// Determinism: qubit and stabilizer enumeration orders are fixed scans of
// the lattice; building the same code twice yields identical matrices.
package code
