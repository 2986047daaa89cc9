// Package syndrome measures stabilizer syndromes of Pauli errors.
//
// The syndrome bit of stabilizer s on error e is their symplectic product,
// which the code's check matrix turns into a plain GF(2) matrix-vector
// product. Syndrome entries follow the code's stabilizer enumeration
// order, so bit i always names stabilizer i.
package syndrome
