// Package noise samples independent Pauli channel errors for stabilizer
// codes in binary symplectic form.
//
// A PauliModel is parameterized by a direction (rx, ry, rz) summing to one;
// at physical error rate p each qubit independently suffers X, Y or Z with
// probability p·rx, p·ry, p·rz. On deformed codes the per-qubit
// distribution is permuted the same way the stabilizers are, so the
// deformed code sees the deformed channel.
//
// All sampling is driven by caller-provided *rand.Rand streams; the same
// seed always reproduces the same error history. DeriveRNG creates
// decorrelated substreams for parallel workers.
package noise
