package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/decoder"
	"github.com/katalvlaran/stabsim/noise"
)

// Options configures a Server.
//
// Seed – base seed for /new-errors sampling; 0 derives one from the clock.
type Options struct {
	Seed int64
}

// Option is a functional option for New.
type Option func(*Options)

// WithSeed fixes the base sampling seed, making /new-errors reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the standard server configuration.
func DefaultOptions() Options {
	return Options{}
}

// Server is the HTTP front of the simulation core. It is stateless apart
// from the sampling RNG sequence and safe for concurrent requests.
type Server struct {
	mux *http.ServeMux

	mu   sync.Mutex
	seed int64
	seq  uint64

	requests      *prometheus.CounterVec
	decodeSeconds prometheus.Histogram
}

// New constructs a Server with all routes registered.
func New(opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		mux:  http.NewServeMux(),
		seed: o.Seed,
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "stabsim_requests_total",
			Help: "Requests per endpoint.",
		}, []string{"endpoint"}),
		decodeSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "stabsim_decode_duration_seconds",
			Help:    "Wall time of /decode calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	s.mux.HandleFunc("/code-data", s.handleCodeData)
	s.mux.HandleFunc("/new-errors", s.handleNewErrors)
	s.mux.HandleFunc("/decode", s.handleDecode)
	s.mux.HandleFunc("/model-names", s.handleModelNames)
	s.mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s
}

// ServeHTTP dispatches to the registered routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type codeDataRequest struct {
	Lx             int    `json:"Lx"`
	Ly             int    `json:"Ly"`
	Lz             int    `json:"Lz"`
	CodeName       string `json:"code_name"`
	DeformedAxis   string `json:"deformed_axis"`
	RotatedPicture bool   `json:"rotated_picture"`
}

type qubitRecord struct {
	Location [3]int `json:"location"`
	Axis     string `json:"axis"`
}

type stabilizerRecord struct {
	Location    [3]int `json:"location"`
	Kind        string `json:"kind"`
	Type        string `json:"type"`
	Orientation int    `json:"orientation,omitempty"`
}

type codeDataResponse struct {
	H           []bsf.Vector       `json:"H"`
	Qubits      []qubitRecord      `json:"qubits"`
	Stabilizers []stabilizerRecord `json:"stabilizers"`
	LogicalX    []bsf.Vector       `json:"logical_x"`
	LogicalZ    []bsf.Vector       `json:"logical_z"`
}

func (s *Server) handleCodeData(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("code-data").Inc()
	var req codeDataRequest
	if !readJSON(w, r, &req) {
		return
	}
	c, err := buildCode(req.CodeName, req.Lx, req.Ly, req.Lz, req.DeformedAxis, "", req.RotatedPicture)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	resp := codeDataResponse{
		H:           make([]bsf.Vector, c.NumStabilizers()),
		Qubits:      make([]qubitRecord, c.N),
		Stabilizers: make([]stabilizerRecord, c.NumStabilizers()),
		LogicalX:    c.LogicalsX,
		LogicalZ:    c.LogicalsZ,
	}
	for i := range resp.H {
		row, err := c.H().RowVector(i)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())

			return
		}
		resp.H[i] = row
	}
	for q, qb := range c.Qubits {
		resp.Qubits[q] = qubitRecord{Location: qb.Location, Axis: qb.Axis.String()}
	}
	for i, st := range c.Stabilizers {
		resp.Stabilizers[i] = stabilizerRecord{
			Location:    st.Location,
			Kind:        string(st.Kind),
			Type:        st.Type.String(),
			Orientation: st.Orientation,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type newErrorsRequest struct {
	Lx               int        `json:"Lx"`
	Ly               int        `json:"Ly"`
	Lz               int        `json:"Lz"`
	P                float64    `json:"p"`
	NoiseDeformation string     `json:"noise_deformation"`
	ErrorModel       [3]float64 `json:"error_model"`
	CodeName         string     `json:"code_name"`
	DeformedAxis     string     `json:"deformed_axis"`
}

func (s *Server) handleNewErrors(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("new-errors").Inc()
	var req newErrorsRequest
	if !readJSON(w, r, &req) {
		return
	}
	c, err := buildCode(req.CodeName, req.Lx, req.Ly, req.Lz, req.DeformedAxis, req.NoiseDeformation, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	model, err := noise.NewPauliModel(direction(req.ErrorModel))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	e, err := model.Generate(c, req.P, s.nextRNG())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	writeJSON(w, http.StatusOK, e)
}

type decodeRequest struct {
	Lx               int        `json:"Lx"`
	Ly               int        `json:"Ly"`
	Lz               int        `json:"Lz"`
	P                float64    `json:"p"`
	MaxBPIter        int        `json:"max_bp_iter"`
	Alpha            float64    `json:"alpha"`
	ChannelUpdate    bool       `json:"channel_update"`
	Syndrome         bsf.Vector `json:"syndrome"`
	NoiseDeformation string     `json:"noise_deformation"`
	Decoder          string     `json:"decoder"`
	ErrorModel       [3]float64 `json:"error_model"`
	CodeName         string     `json:"code_name"`
	DeformedAxis     string     `json:"deformed_axis"`
}

type decodeResponse struct {
	X bsf.Vector `json:"x"`
	Z bsf.Vector `json:"z"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("decode").Inc()
	var req decodeRequest
	if !readJSON(w, r, &req) {
		return
	}
	c, err := buildCode(req.CodeName, req.Lx, req.Ly, req.Lz, req.DeformedAxis, req.NoiseDeformation, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	model, err := noise.NewPauliModel(direction(req.ErrorModel))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	if len(req.Syndrome) != c.NumStabilizers() {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("syndrome length %d, want %d", len(req.Syndrome), c.NumStabilizers()))

		return
	}

	var opts []decoder.Option
	if req.MaxBPIter > 0 {
		opts = append(opts, decoder.WithMaxIter(req.MaxBPIter))
	}
	if req.Alpha > 0 {
		opts = append(opts, decoder.WithAlpha(req.Alpha))
	}
	if req.ChannelUpdate {
		opts = append(opts, decoder.WithChannelUpdate(true))
	}
	d, err := decoder.New(req.Decoder, c, model, req.P, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	start := time.Now()
	corr, err := d.Decode(req.Syndrome)
	s.decodeSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}
	x, _ := corr.XPart()
	z, _ := corr.ZPart()
	writeJSON(w, http.StatusOK, decodeResponse{X: x, Z: z})
}

type modelNamesRequest struct {
	Dimension int `json:"dimension"`
}

type modelNamesResponse struct {
	Codes    []string `json:"codes"`
	Decoders []string `json:"decoders"`
}

func (s *Server) handleModelNames(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("model-names").Inc()
	var req modelNamesRequest
	if !readJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, modelNamesResponse{
		Codes:    code.List(req.Dimension),
		Decoders: decoder.List(),
	})
}

// nextRNG hands out consecutive derived streams from the base seed, so
// each /new-errors call samples a fresh but reproducible error.
func (s *Server) nextRNG() *rand.Rand {
	s.mu.Lock()
	stream := s.seq
	s.seq++
	s.mu.Unlock()

	return noise.DeriveRNG(s.seed, stream)
}

// buildCode resolves request strings and constructs the code.
func buildCode(name string, lx, ly, lz int, axisStr, deformStr string, rotated bool) (*code.Code, error) {
	axis, ok := code.ParseAxis(axisStr)
	if !ok {
		return nil, fmt.Errorf("unknown deformed axis %q", axisStr)
	}
	deform, ok := code.ParseDeformation(deformStr)
	if !ok {
		return nil, fmt.Errorf("unknown deformation %q", deformStr)
	}
	opts := []code.Option{code.WithDeformation(deform), code.WithDeformedAxis(axis)}
	if rotated {
		opts = append(opts, code.WithRotated())
	}

	return code.Build(name, lx, ly, lz, opts...)
}

// direction defaults an absent error model to the depolarizing channel.
func direction(d [3]float64) (rx, ry, rz float64) {
	if d == [3]float64{} {
		return 1.0 / 3, 1.0 / 3, 1.0 / 3
	}

	return d[0], d[1], d[2]
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")

		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))

		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
