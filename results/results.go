package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/stabsim/sim"
)

// ErrClosed reports a write after the sink has been closed.
var ErrClosed = errors.New("results: sink closed")

// Record is one persisted trial outcome together with the run point that
// produced it, flat enough to land in a table row or a JSON line.
type Record struct {
	RunID       string  `json:"run_id"`
	Label       string  `json:"label,omitempty"`
	Family      string  `json:"family"`
	Lx          int     `json:"L_x"`
	Ly          int     `json:"L_y"`
	Lz          int     `json:"L_z,omitempty"`
	Probability float64 `json:"probability"`
	Decoder     string  `json:"decoder"`
	Trial       int     `json:"trial"`
	Success     bool    `json:"success"`
}

// NewRecord flattens one sim result into a Record for the given run.
func NewRecord(runID string, cfg sim.RunConfig, r sim.Result) Record {
	return Record{
		RunID:       runID,
		Label:       cfg.Label,
		Family:      cfg.Family,
		Lx:          cfg.Lx,
		Ly:          cfg.Ly,
		Lz:          cfg.Lz,
		Probability: cfg.Probability,
		Decoder:     cfg.Decoder,
		Trial:       r.Trial,
		Success:     r.Success,
	}
}

// Writer is a per-trial result sink.
type Writer interface {
	Write(rec Record) error
	Close() error
}

// JSONLWriter streams one JSON object per line. Writes are serialized, so
// a single writer can back concurrent simulation workers.
type JSONLWriter struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
	closed bool
}

// NewJSONLWriter wraps w as a JSON-lines sink. If w is an io.Closer it is
// closed by Close.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	j := &JSONLWriter{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		j.closer = c
	}

	return j
}

// Write appends one record line.
func (j *JSONLWriter) Write(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return ErrClosed
	}
	if err := j.enc.Encode(rec); err != nil {
		return fmt.Errorf("results: encode record: %w", err)
	}

	return nil
}

// Close marks the writer closed and closes the underlying writer when it
// supports closing. Close is idempotent.
func (j *JSONLWriter) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil
	}
	j.closed = true
	if j.closer != nil {
		return j.closer.Close()
	}

	return nil
}
