// Package decoder turns syndromes into corrections.
//
// Two strategies are provided behind the Decoder interface, selected by
// name through New:
//
//   - BeliefPropagationOSDDecoder: min-sum belief propagation over the
//     Tanner graph of the check matrix, with message damping (alpha), an
//     optional per-iteration channel update, and LLR clamping. Whether or
//     not BP converges within MaxIter rounds, an ordered-statistics (OSD-0)
//     pass over the reliability-sorted columns produces a correction whose
//     syndrome matches the input exactly. Works on every code family.
//
//   - MatchingDecoder: minimum-weight perfect matching on the defect graph
//     of 2D surface codes (Toric2DCode, Planar2DCode, undeformed). Defects
//     of each stabilizer type are matched pairwise, or to the open
//     boundary on planar codes, and corrections are laid along shortest
//     lattice paths. Small defect sets are matched exactly; larger ones
//     fall back to a deterministic greedy pairing.
//
// Both decoders are deterministic: the same syndrome and parameters yield
// the same correction. A decoder holds no per-trial mutable state and is
// safe for sequential reuse; for concurrent trials give each worker its
// own instance.
package decoder
