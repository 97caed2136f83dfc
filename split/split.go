// Package split partitions a loaded corpus into train, test and dev sets,
// stratified by period, and writes each set back out as CoNLL-U.
package split

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	latincorpus "github.com/jamesainslie/go-latincorpus"
	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/internal/report"
)

// Partitions are disjoint subsets of a corpus whose union is the corpus.
type Partitions struct {
	Train []latincorpus.Record
	Test  []latincorpus.Record
	Dev   []latincorpus.Record
}

// Named returns the partitions with their file names, in write order.
func (p *Partitions) Named() []Named {
	return []Named{
		{Name: "train", Records: p.Train},
		{Name: "test", Records: p.Test},
		{Name: "dev", Records: p.Dev},
	}
}

// Named is a partition with its name.
type Named struct {
	Name    string
	Records []latincorpus.Record
}

// Split partitions records in two random steps: testSize of the records are
// held out from train, then devFraction of the held-out records go to dev and
// the rest to test. Each step keeps period proportions as close as integer
// counts allow.
func Split(records []latincorpus.Record, opts ...Option) (*Partitions, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, f := range []float64{cfg.testSize, cfg.devFraction} {
		if !(f > 0 && f < 1) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFraction, f)
		}
	}

	src := cfg.source
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)

	train, held := stratified(records, cfg.testSize, rng)
	test, dev := stratified(held, cfg.devFraction, rng)
	p := &Partitions{Train: train, Test: test, Dev: dev}

	r := report.New(cfg.output)
	for _, n := range p.Named() {
		r.Title("y_" + n.Name)
		report.Proportions(r, PeriodCounts(n.Records))
	}

	cfg.logger.Info("split corpus",
		"records", len(records),
		"train", len(train),
		"test", len(test),
		"dev", len(dev))

	return p, nil
}

// stratified shuffles records and moves ceil(frac*n) of them to held,
// allocating the held count across periods by largest remainder.
func stratified(records []latincorpus.Record, frac float64, rng *rand.Rand) (kept, held []latincorpus.Record) {
	if len(records) == 0 {
		return nil, nil
	}

	var order []attribution.Period
	groups := make(map[attribution.Period][]latincorpus.Record)
	for _, r := range records {
		if _, ok := groups[r.Period]; !ok {
			order = append(order, r.Period)
		}
		groups[r.Period] = append(groups[r.Period], r)
	}

	n := len(records)
	nHeld := int(math.Ceil(frac * float64(n)))
	alloc := allocate(order, groups, n, nHeld)

	for _, p := range order {
		g := groups[p]
		rng.Shuffle(len(g), func(i, j int) { g[i], g[j] = g[j], g[i] })
		held = append(held, g[:alloc[p]]...)
		kept = append(kept, g[alloc[p]:]...)
	}

	rng.Shuffle(len(kept), func(i, j int) { kept[i], kept[j] = kept[j], kept[i] })
	rng.Shuffle(len(held), func(i, j int) { held[i], held[j] = held[j], held[i] })
	return kept, held
}

// allocate splits nHeld across groups proportionally to their sizes.
func allocate(order []attribution.Period, groups map[attribution.Period][]latincorpus.Record, n, nHeld int) map[attribution.Period]int {
	type share struct {
		period    attribution.Period
		size      int
		remainder float64
	}

	alloc := make(map[attribution.Period]int, len(order))
	shares := make([]share, 0, len(order))
	assigned := 0
	for _, p := range order {
		size := len(groups[p])
		exact := float64(size) * float64(nHeld) / float64(n)
		base := int(math.Floor(exact))
		alloc[p] = base
		assigned += base
		shares = append(shares, share{period: p, size: size, remainder: exact - float64(base)})
	}

	slices.SortStableFunc(shares, func(a, b share) int {
		if c := cmp.Compare(b.remainder, a.remainder); c != 0 {
			return c
		}
		return cmp.Compare(b.size, a.size)
	})
	for i := 0; assigned < nHeld; i = (i + 1) % len(shares) {
		if alloc[shares[i].period] < shares[i].size {
			alloc[shares[i].period]++
			assigned++
		}
	}
	return alloc
}

// PeriodCounts tallies records per period in first-seen order.
func PeriodCounts(records []latincorpus.Record) *report.Counter[attribution.Period] {
	c := report.NewCounter[attribution.Period]()
	for _, r := range records {
		c.Add(r.Period, 1)
	}
	return c
}
