// Package logical judges decoding outcomes: whether a residual operator
// lies in the codespace, and whether it acts on the encoded qubits.
//
// Decoding succeeds when the residual error (sampled error times
// correction) is a stabilizer: in the codespace and commuting with every
// logical operator. A residual that commutes with all stabilizers but
// anticommutes with some logical is a logical error, the quantity
// threshold studies count.
package logical
