package sim

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/stabsim/bsf"
)

var (
	// ErrBadInput reports a malformed or incomplete experiment spec.
	ErrBadInput = errors.New("sim: bad input spec")

	// ErrUnknownNoiseModel reports a noise model name outside the registry.
	ErrUnknownNoiseModel = errors.New("sim: unknown noise model")
)

// Result is the outcome of one decoding trial.
type Result struct {
	Trial      int        `json:"trial"`
	Success    bool       `json:"success"`
	Error      bsf.Vector `json:"error,omitempty"`
	Syndrome   bsf.Vector `json:"syndrome,omitempty"`
	Correction bsf.Vector `json:"correction,omitempty"`
}

// Stats aggregates the trials of one run configuration.
type Stats struct {
	Trials   int `json:"trials"`
	Failures int `json:"failures"`
}

// FailureRate is the logical failure estimate.
func (s Stats) FailureRate() float64 {
	if s.Trials == 0 {
		return 0
	}

	return float64(s.Failures) / float64(s.Trials)
}

// StdError is the binomial standard error of the failure estimate.
func (s Stats) StdError() float64 {
	if s.Trials == 0 {
		return 0
	}
	r := s.FailureRate()

	return math.Sqrt(r * (1 - r) / float64(s.Trials))
}

// Options configures Run.
//
// Workers – concurrent trial workers; defaults to GOMAXPROCS.
// Seed    – base RNG seed; 0 selects the fixed default stream.
// Verbose – per-trial payloads: attach error, syndrome and correction to
// each Result instead of just the success flag.
// OnResult – sink invoked for every finished trial, serialized but not
// ordered; Result.Trial identifies the trial.
type Options struct {
	Workers  int
	Seed     int64
	Verbose  bool
	OnResult func(Result)
}

// Option is a functional option for Run.
type Option func(*Options)

// WithWorkers sets the worker-pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed sets the base seed all trial streams derive from.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithVerboseResults attaches error, syndrome and correction vectors to
// every Result.
func WithVerboseResults() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithResultSink registers a per-trial callback.
func WithResultSink(fn func(Result)) Option {
	return func(o *Options) { o.OnResult = fn }
}

// DefaultOptions returns the standard run configuration.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}
