// Package sweep runs a batch of headless swarm runs over a grid of turn gains
// and global-radius chances.
package sweep

import (
	"cmp"
	"slices"
	"sync"

	"universe-game/internal/swarm"
	prng "universe-game/pkg/core"
)

// Point is one cell of the parameter grid.
type Point struct {
	Beta   float64
	Chance float64
}

// Result summarizes one finished run.
type Result struct {
	Point
	Polarization float64
	Gyration     float64
	Err          error
}

// Grid returns the cartesian product of betas and chances.
func Grid(betas, chances []float64) []Point {
	pts := make([]Point, 0, len(betas)*len(chances))
	for _, b := range betas {
		for _, c := range chances {
			pts = append(pts, Point{Beta: b, Chance: c})
		}
	}
	return pts
}

// Run evaluates every point on a pool of workers. Each run starts from base
// with the same seed so results differ only by the swept parameters. The
// results are ordered by descending final polarization; failed runs sort last.
func Run(base swarm.Config, pts []Point, steps, workers int, seed int64) []Result {
	workers = max(workers, 1)
	jobs := make(chan Point)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- evaluate(base, p, steps, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range pts {
			jobs <- p
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(pts))
	for res := range results {
		all = append(all, res)
	}
	slices.SortFunc(all, compare)
	return all
}

func evaluate(base swarm.Config, p Point, steps int, seed int64) Result {
	cfg := base
	cfg.Beta = p.Beta
	cfg.ChanceForGlobalRadius = p.Chance
	cfg.Workers = 1

	tel, err := swarm.Record(cfg, steps, max(steps, 1), prng.NewRNG(seed))
	if err != nil {
		return Result{Point: p, Err: err}
	}
	pol, gyr := tel.Last()
	return Result{Point: p, Polarization: pol, Gyration: gyr}
}

func compare(a, b Result) int {
	if (a.Err == nil) != (b.Err == nil) {
		if a.Err == nil {
			return -1
		}
		return 1
	}
	return cmp.Or(
		cmp.Compare(b.Polarization, a.Polarization),
		cmp.Compare(a.Beta, b.Beta),
		cmp.Compare(a.Chance, b.Chance),
	)
}
