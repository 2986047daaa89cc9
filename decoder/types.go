package decoder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/noise"
)

var (
	// ErrUnknownDecoder reports a decoder name outside the registry.
	ErrUnknownDecoder = errors.New("decoder: unknown decoder")

	// ErrDecodingTopology reports a code the decoder cannot operate on,
	// or a lattice path that cannot be laid out.
	ErrDecodingTopology = errors.New("decoder: unsupported decoding topology")

	// ErrInconsistentSyndrome reports a syndrome outside the image of the
	// check matrix; no correction can reproduce it.
	ErrInconsistentSyndrome = errors.New("decoder: syndrome is not consistent with the code")
)

// Decoder names accepted by New.
const (
	BeliefPropagationOSD = "BeliefPropagationOSDDecoder"
	Matching             = "MatchingDecoder"
)

// Decoder maps a syndrome to a correction in binary symplectic form.
// Implementations guarantee H·correction ≡ syndrome (mod 2) on success.
type Decoder interface {
	Name() string
	Decode(s bsf.Vector) (bsf.Vector, error)
}

// Options tunes belief propagation; the matching decoder ignores them.
//
// MaxIter       – BP message-passing rounds before the OSD fallback.
// Alpha         – damping factor in (0, 1]; 1 disables damping.
// ChannelUpdate – fold the running posterior back into the channel prior
// after every round.
type Options struct {
	MaxIter       int
	Alpha         float64
	ChannelUpdate bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithMaxIter bounds the number of BP rounds.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithAlpha sets the BP message damping factor.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithChannelUpdate toggles the per-iteration channel update.
func WithChannelUpdate(on bool) Option {
	return func(o *Options) { o.ChannelUpdate = on }
}

// DefaultOptions returns the standard BP configuration.
func DefaultOptions() Options {
	return Options{
		MaxIter:       50,
		Alpha:         0.75,
		ChannelUpdate: false,
	}
}

// List returns the registered decoder names, sorted.
func List() []string {
	names := []string{BeliefPropagationOSD, Matching}
	sort.Strings(names)

	return names
}

// New builds the named decoder for code c under the given channel. The
// error model and rate p set the BP channel priors; matching uses only
// the code geometry.
func New(name string, c *code.Code, model *noise.PauliModel, p float64, opts ...Option) (Decoder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch name {
	case BeliefPropagationOSD:
		return newBPOSD(c, model, p, cfg)
	case Matching:
		return newMatching(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
	}
}
