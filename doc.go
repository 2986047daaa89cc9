// Package stabsim simulates quantum error correction on stabilizer codes:
// it builds a code's parity-check structure, samples physical errors,
// extracts syndromes, decodes them into corrections, and judges success
// against logical operators.
//
// 🚀 What is stabsim?
//
//	A GF(2) sparse-linear-algebra engine coupled to decoding algorithms:
//		• bsf/      — binary-symplectic vectors, sparse matrices, Gaussian elimination
//		• code/     — toric, planar, rotated, rhombic and X-cube lattice builders
//		• noise/    — IID Pauli channels with XZZX/XY deformation-aware sampling
//		• syndrome/ — syndrome extraction and X/Z sub-syndrome splits
//		• decoder/  — BP-OSD message passing and minimum-weight matching
//		• logical/  — codespace membership and logical error classification
//		• sim/      — parallel trial runner with reproducible RNG streams
//		• results/  — JSON-lines and SQLite result sinks
//		• server/   — HTTP surface for visualization front-ends
//
// ✨ Why choose stabsim?
//
//   - Deterministic – one seed reproduces every trial, at any worker count
//   - Rock-solid guarantees – every decoder output is syndrome-consistent
//   - Pure Go – no cgo, pure-Go SQLite driver
//   - Extensible – codes and decoders register behind name-keyed factories
//
// Start with code.Build to construct a code, noise.PauliModel to sample
// errors, decoder.New to decode, and sim.Run to sweep whole experiments.
//
// See cmd/stabsim for the command-line entry points (run, ls, serve).
package stabsim
