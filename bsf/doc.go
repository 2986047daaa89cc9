// Package bsf implements the binary symplectic format: GF(2) vectors and
// sparse GF(2) matrices used to represent Pauli operators, parity-check
// matrices and syndromes of stabilizer codes.
//
// A Pauli operator on n qubits is a length-2n GF(2) vector: the first n
// entries mark X-support, the last n mark Z-support; a qubit with both bits
// set carries a Y. Two operators commute iff their symplectic product
//
//	⟨a,b⟩ = a_x·b_z + a_z·b_x (mod 2)
//
// vanishes. All arithmetic in this package is mod-2 (XOR of bits).
//
// The package provides:
//
//   - Vector: dense GF(2) vector with XOR, weight and symplectic product.
//   - Matrix: sparse row-support GF(2) matrix with mat-vec products,
//     half-swapping (symplectic ↔ decoding convention) and dense export.
//   - Gaussian elimination: Rank and SolveOrdered, the ordered-column
//     GF(2) solver underlying ordered-statistics decoding.
//
// Determinism: every operation is a pure function of its inputs; iteration
// orders are fixed. No randomness, no shared mutable state.
package bsf
