package decoder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/noise"
)

// llrClamp bounds log-likelihood ratios so that zero or unit channel
// probabilities stay finite through message passing.
const llrClamp = 30.0

// edgeRef addresses one Tanner-graph edge from the variable side.
type edgeRef struct {
	row, pos int
}

// bposd is the belief-propagation decoder with OSD-0 post-processing.
// The Tanner graph and channel priors are fixed at construction; Decode
// allocates the per-trial message buffers.
type bposd struct {
	c      *code.Code
	cfg    Options
	rows   [][]int   // check matrix support, row major
	edges  [][]edgeRef
	priors []float64 // clamped channel LLRs, one per column
}

func newBPOSD(c *code.Code, model *noise.PauliModel, p float64, cfg Options) (*bposd, error) {
	if cfg.MaxIter < 0 {
		cfg.MaxIter = 0
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = DefaultOptions().Alpha
	}

	probs, err := model.FlipProbabilities(c, p)
	if err != nil {
		return nil, err
	}
	priors := make([]float64, len(probs))
	for i, q := range probs {
		priors[i] = clampLLR(math.Log((1 - q) / q))
	}

	m := c.CheckMatrix()
	rows := make([][]int, m.Rows())
	edges := make([][]edgeRef, m.Cols())
	for r := range rows {
		sup, err := m.Row(r)
		if err != nil {
			return nil, err
		}
		rows[r] = sup
		for pos, col := range sup {
			edges[col] = append(edges[col], edgeRef{row: r, pos: pos})
		}
	}

	return &bposd{c: c, cfg: cfg, rows: rows, edges: edges, priors: priors}, nil
}

func (d *bposd) Name() string { return BeliefPropagationOSD }

// Decode runs damped min-sum BP for at most MaxIter rounds, returning the
// hard decision as soon as its syndrome matches s. Otherwise the posterior
// reliabilities order the columns for OSD-0, which always produces a
// syndrome-consistent correction.
//
// Complexity: O(MaxIter · nnz(H)) for BP plus one Gaussian elimination.
func (d *bposd) Decode(s bsf.Vector) (bsf.Vector, error) {
	if len(s) != d.c.NumStabilizers() {
		return nil, bsf.ErrDimensionMismatch
	}

	nCols := 2 * d.c.N
	prior := append([]float64(nil), d.priors...)
	posterior := append([]float64(nil), d.priors...)

	// varToCheck and checkToVar mirror the row support layout.
	varToCheck := make([][]float64, len(d.rows))
	checkToVar := make([][]float64, len(d.rows))
	for r, sup := range d.rows {
		varToCheck[r] = make([]float64, len(sup))
		checkToVar[r] = make([]float64, len(sup))
		for pos, col := range sup {
			varToCheck[r][pos] = prior[col]
		}
	}

	for iter := 0; ; iter++ {
		x := hardDecision(posterior)
		ok, err := d.syndromeMatches(x, s)
		if err != nil {
			return nil, err
		}
		if ok {
			return x, nil
		}
		if iter == d.cfg.MaxIter {
			break
		}

		// Check pass: min-sum with the syndrome sign folded in.
		for r := range d.rows {
			min1, min2 := math.Inf(1), math.Inf(1)
			argMin := -1
			sign := 1.0
			if s[r] == 1 {
				sign = -1.0
			}
			for pos, msg := range varToCheck[r] {
				if msg < 0 {
					sign = -sign
				}
				mag := math.Abs(msg)
				if mag < min1 {
					min1, min2 = mag, min1
					argMin = pos
				} else if mag < min2 {
					min2 = mag
				}
			}
			for pos, msg := range varToCheck[r] {
				mag := min1
				if pos == argMin {
					mag = min2
				}
				if math.IsInf(mag, 1) {
					mag = llrClamp
				}
				out := sign * mag
				if msg < 0 {
					out = -out
				}
				checkToVar[r][pos] = out
			}
		}

		// Variable pass: damped totals, then the posterior.
		for col := 0; col < nCols; col++ {
			total := prior[col]
			for _, e := range d.edges[col] {
				total += checkToVar[e.row][e.pos]
			}
			posterior[col] = clampLLR(total)
			for _, e := range d.edges[col] {
				fresh := clampLLR(total - checkToVar[e.row][e.pos])
				varToCheck[e.row][e.pos] = (1-d.cfg.Alpha)*varToCheck[e.row][e.pos] + d.cfg.Alpha*fresh
			}
		}

		if d.cfg.ChannelUpdate {
			for col := 0; col < nCols; col++ {
				prior[col] = clampLLR((1-d.cfg.Alpha)*prior[col] + d.cfg.Alpha*posterior[col])
			}
		}
	}

	// OSD-0: most-suspect columns first, index order breaking ties.
	order := make([]int, nCols)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return posterior[order[a]] < posterior[order[b]]
	})
	corr, err := d.c.CheckMatrix().SolveOrdered(s, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistentSyndrome, err)
	}

	return corr, nil
}

func (d *bposd) syndromeMatches(x, s bsf.Vector) (bool, error) {
	got, err := d.c.CheckMatrix().MulVec(x)
	if err != nil {
		return false, err
	}
	for i := range got {
		if got[i] != s[i] {
			return false, nil
		}
	}

	return true, nil
}

func hardDecision(posterior []float64) bsf.Vector {
	x := bsf.NewVector(len(posterior))
	for i, l := range posterior {
		if l < 0 {
			x[i] = 1
		}
	}

	return x
}

func clampLLR(l float64) float64 {
	switch {
	case l > llrClamp:
		return llrClamp
	case l < -llrClamp:
		return -llrClamp
	}

	return l
}
