// Package sim runs Monte-Carlo decoding experiments: sample an error,
// extract its syndrome, decode, and judge the outcome, many times over.
//
// Trials are independent, so Run fans them out over a worker pool. Every
// trial derives its own RNG stream from the base seed and the trial index,
// which makes results reproducible regardless of worker count or
// scheduling. The immutable Code is shared; each worker owns a private
// decoder instance and trial buffers.
//
// An experiment plan can be loaded from a JSON input spec whose "ranges"
// block sweeps lattice sizes and physical error rates for one code, noise
// and decoder combination.
package sim
