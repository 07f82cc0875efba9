// SPDX-License-Identifier: MIT
// Package: subiso
//
// bundle.go — engine pool for one search: sizing, seeding, goroutines,
// match cap, cancellation, panic propagation and the final merge.
//
// Shared mutable state (everything else is engine-private):
//   - global: the work-sharing stack (mutex + cond).
//   - matches, stop, capHit: atomics.
//   - panicVal: written once under panicOnce.

package subiso

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// engineLinearProcs is the processor count up to which every processor
// gets an engine; beyond it only every second one does.
const engineLinearProcs = 8

// Stats summarizes the work done by a search.
type Stats struct {
	// Engines is the number of worker goroutines started.
	Engines int
	// Explored counts exploration steps over all engines.
	Explored int64
	// Donated counts records pushed to the global stack.
	Donated int64
	// Stolen counts records popped from it.
	Stolen int64
}

// Result is the outcome of Match.
type Result struct {
	// Table holds one row per embedding, pattern-id column order.
	Table Table
	// Truncated reports that MaxMatchCount was reached; more embeddings
	// may exist.
	Truncated bool
	// Stats describes the run.
	Stats Stats
}

type bundle struct {
	pattern  *Graph
	target   *Graph
	ord      Ordering
	opts     Options
	semantic bool
	log      *slog.Logger

	global  *globalStack
	engines []*engine

	matches atomic.Int64
	stop    atomic.Bool
	capHit  atomic.Bool

	panicOnce sync.Once
	panicVal  any

	// onExplore runs before every exploration step when set (tests only).
	onExplore func(e *engine)
}

func newBundle(pattern, target *Graph, ord Ordering, opts Options) *bundle {
	return &bundle{
		pattern:  pattern,
		target:   target,
		ord:      ord,
		opts:     opts,
		semantic: opts.SemanticMatch && pattern.HasEdgeAttributes() && target.HasEdgeAttributes(),
		log:      opts.Logger,
	}
}

func (b *bundle) stopping() bool { return b.stop.Load() }

// halt stops every engine at its next step and wakes idle ones.
func (b *bundle) halt() {
	b.stop.Store(true)
	if b.global != nil {
		b.global.halt()
	}
}

// admit reserves one row against MaxMatchCount. admitted is false when the
// cap was already reached; more is false once this row reached it.
func (b *bundle) admit() (admitted, more bool) {
	n := b.matches.Add(1)
	limit := int64(b.opts.MaxMatchCount)
	if limit == 0 {
		return true, true
	}
	if n > limit {
		b.halt()
		return false, false
	}
	if n == limit {
		b.capHit.Store(true)
		b.halt()
		return true, false
	}

	return true, true
}

func (b *bundle) recoverPanic() {
	if r := recover(); r != nil {
		b.panicOnce.Do(func() { b.panicVal = r })
		b.log.Error("Engine panicked.", "panic", r)
		b.halt()
	}
}

// firstLevelCandidates lists every target vertex feasible for sorted[0].
func (b *bundle) firstLevelCandidates() []int {
	pv := b.ord.Sorted[0]
	deg, attr := b.pattern.Degree(pv), b.pattern.Attribute(pv)
	var out []int
	for v := 0; v < b.target.VertexCount(); v++ {
		if b.target.Degree(v) >= deg && b.target.Attribute(v) == attr {
			out = append(out, v)
		}
	}

	return out
}

// defaultEngineCount maps available processors to engines: one per
// processor up to engineLinearProcs, then one per two processors.
func defaultEngineCount(procs int) int {
	if procs < 1 {
		return 1
	}
	if procs <= engineLinearProcs {
		return procs
	}

	return engineLinearProcs + (procs-engineLinearProcs)/2
}

// engineCount resolves the pool size: explicit workers or the default,
// never more than the seeds, at least one.
func engineCount(workers, procs, seeds int) int {
	k := workers
	if k <= 0 {
		k = defaultEngineCount(procs)
	}

	return max(1, min(k, seeds))
}

// partitionSeeds deals seeds to k engines, heaviest first, each to the
// least-loaded engine. A seed weighs 1 + its target degree, a proxy for
// the size of its subtree.
func partitionSeeds(seeds []int, k int, weight func(v int) int) [][]int {
	order := append([]int(nil), seeds...)
	sort.SliceStable(order, func(i, j int) bool { return weight(order[i]) > weight(order[j]) })

	parts := make([][]int, k)
	load := make([]int, k)
	for _, s := range order {
		best := 0
		for i := 1; i < k; i++ {
			if load[i] < load[best] {
				best = i
			}
		}
		parts[best] = append(parts[best], s)
		load[best] += weight(s)
	}

	return parts
}

// run executes the search and merges the engines' rows.
func (b *bundle) run(ctx context.Context) (Result, error) {
	seeds := b.firstLevelCandidates()
	if len(seeds) == 0 {
		b.log.Debug("Search finished.", "reason", "no first-level candidates")
		return Result{}, nil
	}
	if len(b.ord.Sorted) == 1 {
		return b.runSingleVertex(seeds), nil
	}

	k := engineCount(b.opts.Workers, runtime.GOMAXPROCS(0), len(seeds))
	parts := partitionSeeds(seeds, k, func(v int) int { return 1 + b.target.Degree(v) })
	b.global = newGlobalStack(len(b.ord.Sorted), k)
	b.engines = make([]*engine, k)
	for i := range b.engines {
		b.engines[i] = newEngine(i, b)
		b.engines[i].seed(parts[i])
	}

	stopAfter := context.AfterFunc(ctx, b.halt)

	b.log.Debug("Search started.",
		"engines", k, "seeds", len(seeds), "kind", b.opts.Kind.String(),
		"representation", b.target.Representation().String(), "semantic", b.semantic)

	var wg sync.WaitGroup
	for _, e := range b.engines {
		wg.Add(1)
		go func(e *engine) {
			defer wg.Done()
			defer b.recoverPanic()
			e.run()
		}(e)
	}
	wg.Wait()
	// false: the context fired and halted the engines.
	interrupted := !stopAfter()

	if b.panicVal != nil {
		panic(b.panicVal)
	}

	var (
		merged solutions
		stats  = Stats{Engines: k}
	)
	for _, e := range b.engines {
		merged.append(&e.sols)
		stats.Explored += e.explored
		stats.Donated += e.donated
		stats.Stolen += e.stolen
	}
	res := Result{
		Table:     merged.exportTable(b.ord.Sorted, b.opts.MaxMatchCount),
		Truncated: b.capHit.Load(),
		Stats:     stats,
	}
	b.log.Debug("Search finished.",
		"solutions", res.Table.Rows, "truncated", res.Truncated,
		"explored", stats.Explored, "donated", stats.Donated, "stolen", stats.Stolen)

	if interrupted {
		return res, context.Cause(ctx)
	}

	return res, nil
}

// runSingleVertex records every seed as a one-column row.
func (b *bundle) runSingleVertex(seeds []int) Result {
	var sols solutions
	for _, s := range seeds {
		admitted, more := b.admit()
		if !admitted {
			break
		}
		row := []int{s}
		sols.add(&row)
		if !more {
			break
		}
	}

	return Result{
		Table:     sols.exportTable(b.ord.Sorted, b.opts.MaxMatchCount),
		Truncated: b.capHit.Load(),
	}
}
