// Package montecarlo stress-tests a bucket with normally distributed
// returns and reports P10/P50/P90 value paths. Paths are independent, so
// generation fans out across workers and merges before the percentile
// aggregation barrier.
package montecarlo

import (
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"patrimony-engine/internal/model"
)

const defaultPaths = 10000

// batchSize fixes the path-batch granularity. Each batch owns its own
// random stream (seed+batch), so a pinned seed produces identical output
// regardless of how many workers drain the batch queue.
const batchSize = 256

// Config parameterizes one simulation. Mu and Sigma are annual. A zero
// Seed draws a time-based one, making the run non-reproducible by design;
// callers wanting stable output must pass an explicit seed.
type Config struct {
	Start float64
	Years int
	Mu    float64
	Sigma float64
	Paths int
	Seed  uint64
}

func (c Config) paths() int {
	if c.Paths > 0 {
		return c.Paths
	}
	return defaultPaths
}

func (c Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Simulate draws monthly returns (mean mu/12, sd sigma/√12), compounds each
// path and reports the 10th/50th/90th percentile across paths at every
// year-end. Returns nil when start or horizon is non-positive.
func Simulate(cfg Config) *model.PercentilePaths {
	if cfg.Start <= 0 || cfg.Years <= 0 {
		return nil
	}
	paths := cfg.paths()
	months := cfg.Years * 12
	muMonthly := cfg.Mu / 12
	sigmaMonthly := cfg.Sigma / math.Sqrt(12)

	// values[p][y] is path p's value at the end of year y. Workers write
	// disjoint path ranges, so no locking is needed.
	values := make([][]float64, paths)
	for p := range values {
		values[p] = make([]float64, cfg.Years)
	}

	seed := cfg.seed()
	batches := (paths + batchSize - 1) / batchSize
	jobs := make(chan int, batches)
	for b := 0; b < batches; b++ {
		jobs <- b
	}
	close(jobs)

	workers := runtime.GOMAXPROCS(0)
	if workers > batches {
		workers = batches
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				dist := distuv.Normal{
					Mu:    muMonthly,
					Sigma: sigmaMonthly,
					Src:   rand.NewSource(seed + uint64(b)),
				}
				lo := b * batchSize
				hi := lo + batchSize
				if hi > paths {
					hi = paths
				}
				for p := lo; p < hi; p++ {
					v := 1.0
					for m := 0; m < months; m++ {
						v *= 1 + dist.Rand()
						if (m+1)%12 == 0 {
							values[p][(m+1)/12-1] = cfg.Start * v
						}
					}
				}
			}
		}()
	}
	wg.Wait()

	out := &model.PercentilePaths{
		Years: make([]int, cfg.Years),
		P10:   make([]float64, cfg.Years),
		P50:   make([]float64, cfg.Years),
		P90:   make([]float64, cfg.Years),
	}
	col := make([]float64, paths)
	for y := 0; y < cfg.Years; y++ {
		for p := 0; p < paths; p++ {
			col[p] = values[p][y]
		}
		sort.Float64s(col)
		out.Years[y] = y + 1
		out.P10[y] = stat.Quantile(0.10, stat.LinInterp, col, nil)
		out.P50[y] = stat.Quantile(0.50, stat.LinInterp, col, nil)
		out.P90[y] = stat.Quantile(0.90, stat.LinInterp, col, nil)
	}
	return out
}

// SimulateTerminal is the coarser single-shot variant: one draw per year,
// percentiles of the terminal value only. Same nil guard as Simulate.
func SimulateTerminal(cfg Config) *model.TerminalPercentiles {
	if cfg.Start <= 0 || cfg.Years <= 0 {
		return nil
	}
	paths := cfg.paths()
	dist := distuv.Normal{
		Mu:    cfg.Mu,
		Sigma: cfg.Sigma,
		Src:   rand.NewSource(cfg.seed()),
	}
	finals := make([]float64, paths)
	for p := 0; p < paths; p++ {
		v := 1.0
		for y := 0; y < cfg.Years; y++ {
			v *= 1 + dist.Rand()
		}
		finals[p] = cfg.Start * v
	}
	sort.Float64s(finals)
	return &model.TerminalPercentiles{
		P10: stat.Quantile(0.10, stat.LinInterp, finals, nil),
		P50: stat.Quantile(0.50, stat.LinInterp, finals, nil),
		P90: stat.Quantile(0.90, stat.LinInterp, finals, nil),
	}
}

// BenchmarkPath compounds a deterministic comparison curve (e.g. the CDI or
// T-bill rate) over the horizon, one value per year-end.
func BenchmarkPath(start, annualRate float64, years int) []float64 {
	if years <= 0 {
		return nil
	}
	out := make([]float64, years)
	for y := 0; y < years; y++ {
		out[y] = start * math.Pow(1+annualRate, float64(y+1))
	}
	return out
}
