package sim

import (
	"context"
	"sync"

	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/decoder"
	"github.com/katalvlaran/stabsim/logical"
	"github.com/katalvlaran/stabsim/noise"
	"github.com/katalvlaran/stabsim/syndrome"
)

// Run executes trials of one configuration over a worker pool and returns
// the aggregate statistics. Trial t always consumes the RNG stream derived
// from (seed, t), so the outcome set is independent of worker count.
// Cancelling ctx stops feeding new trials; finished trials are kept.
func Run(ctx context.Context, cfg RunConfig, trials int, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	c, err := code.Build(cfg.Family, cfg.Lx, cfg.Ly, cfg.Lz, code.WithDeformation(cfg.Deformation))
	if err != nil {
		return Stats{}, err
	}
	model, err := noise.NewPauliModel(cfg.Direction[0], cfg.Direction[1], cfg.Direction[2])
	if err != nil {
		return Stats{}, err
	}
	dopts := decoderOptions(cfg.DecoderOpts)
	// Validate the decoder configuration before spawning workers.
	if _, err := decoder.New(cfg.Decoder, c, model, cfg.Probability, dopts...); err != nil {
		return Stats{}, err
	}

	var (
		mu       sync.Mutex
		stats    Stats
		firstErr error
	)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := decoder.New(cfg.Decoder, c, model, cfg.Probability, dopts...)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				for range jobs {
				}

				return
			}
			for t := range jobs {
				res, err := runTrial(c, model, d, cfg.Probability, o, t)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					continue
				}
				stats.Trials++
				if !res.Success {
					stats.Failures++
				}
				if o.OnResult != nil {
					o.OnResult(res)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for t := 0; t < trials; t++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- t:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return stats, firstErr
	}

	return stats, ctx.Err()
}

// runTrial performs one sample→measure→decode→judge cycle.
func runTrial(c *code.Code, model *noise.PauliModel, d decoder.Decoder, p float64, o Options, trial int) (Result, error) {
	rng := noise.DeriveRNG(o.Seed, uint64(trial))
	e, err := model.Generate(c, p, rng)
	if err != nil {
		return Result{}, err
	}
	s, err := syndrome.Measure(c, e)
	if err != nil {
		return Result{}, err
	}
	corr, err := d.Decode(s)
	if err != nil {
		return Result{}, err
	}
	ok, err := logical.Success(c, corr, e)
	if err != nil {
		return Result{}, err
	}

	res := Result{Trial: trial, Success: ok}
	if o.Verbose {
		res.Error = e
		res.Syndrome = s
		res.Correction = corr
	}

	return res, nil
}

func decoderOptions(p DecoderParams) []decoder.Option {
	var opts []decoder.Option
	if p.MaxBPIter > 0 {
		opts = append(opts, decoder.WithMaxIter(p.MaxBPIter))
	}
	if p.Alpha > 0 {
		opts = append(opts, decoder.WithAlpha(p.Alpha))
	}
	if p.ChannelUpdate {
		opts = append(opts, decoder.WithChannelUpdate(true))
	}

	return opts
}
