package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/stabsim/code"
)

// InputSpec is the JSON experiment file: one code/noise/decoder
// combination swept over lattice sizes and error rates.
type InputSpec struct {
	Comments string `json:"comments,omitempty"`
	Ranges   Ranges `json:"ranges"`
}

// Ranges is the sweep block of an InputSpec.
type Ranges struct {
	Label       string      `json:"label"`
	Code        CodeSpec    `json:"code"`
	Noise       NoiseSpec   `json:"noise"`
	Decoder     DecoderSpec `json:"decoder"`
	Probability []float64   `json:"probability"`
}

// CodeSpec names a code family and the lattice sizes to sweep.
type CodeSpec struct {
	Model      string       `json:"model"`
	Parameters []CodeParams `json:"parameters"`
}

// CodeParams is one lattice size triple.
type CodeParams struct {
	Lx int `json:"L_x"`
	Ly int `json:"L_y"`
	Lz int `json:"L_z"`
}

// NoiseSpec names a noise model and its (rx, ry, rz) direction. The
// deformed model names select the code deformation as well as the
// permuted channel.
type NoiseSpec struct {
	Model      string     `json:"model"`
	Parameters [3]float64 `json:"parameters"`
}

// DecoderSpec names a decoder and its tuning parameters.
type DecoderSpec struct {
	Model      string        `json:"model"`
	Parameters DecoderParams `json:"parameters"`
}

// DecoderParams mirrors the decoder options found in input files.
type DecoderParams struct {
	MaxBPIter     int     `json:"max_bp_iter,omitempty"`
	Alpha         float64 `json:"alpha,omitempty"`
	ChannelUpdate bool    `json:"channel_update,omitempty"`
}

// RunConfig is one fully resolved experiment point.
type RunConfig struct {
	Label       string
	Family      string
	Lx, Ly, Lz  int
	Deformation code.Deformation
	Direction   [3]float64
	Probability float64
	Decoder     string
	DecoderOpts DecoderParams
}

// noiseDeformations maps input noise model names to code deformations.
var noiseDeformations = map[string]code.Deformation{
	"PauliErrorModel":        code.DeformationNone,
	"DeformedXZZXErrorModel": code.DeformationXZZX,
	"DeformedXYErrorModel":   code.DeformationXY,
}

// NoiseModels lists the accepted noise model names, undeformed first.
func NoiseModels() []string {
	return []string{"PauliErrorModel", "DeformedXZZXErrorModel", "DeformedXYErrorModel"}
}

// ReadInput parses an InputSpec from r.
func ReadInput(r io.Reader) (*InputSpec, error) {
	var spec InputSpec
	dec := json.NewDecoder(r)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return &spec, nil
}

// ReadInputFile parses an InputSpec from a file.
func ReadInputFile(path string) (*InputSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadInput(f)
}

// Expand resolves the sweep into the list of run configurations, sizes
// outer, probabilities inner.
func (s *InputSpec) Expand() ([]RunConfig, error) {
	r := s.Ranges
	if r.Code.Model == "" || len(r.Code.Parameters) == 0 {
		return nil, fmt.Errorf("%w: missing code model or sizes", ErrBadInput)
	}
	if len(r.Probability) == 0 {
		return nil, fmt.Errorf("%w: missing probabilities", ErrBadInput)
	}
	deformation, ok := noiseDeformations[r.Noise.Model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoiseModel, r.Noise.Model)
	}
	decoderName := r.Decoder.Model
	if decoderName == "" {
		return nil, fmt.Errorf("%w: missing decoder model", ErrBadInput)
	}

	var cfgs []RunConfig
	for _, size := range r.Code.Parameters {
		for _, p := range r.Probability {
			cfgs = append(cfgs, RunConfig{
				Label:       r.Label,
				Family:      r.Code.Model,
				Lx:          size.Lx,
				Ly:          size.Ly,
				Lz:          size.Lz,
				Deformation: deformation,
				Direction:   r.Noise.Parameters,
				Probability: p,
				Decoder:     decoderName,
				DecoderOpts: r.Decoder.Parameters,
			})
		}
	}

	return cfgs, nil
}
