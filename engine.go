// SPDX-License-Identifier: MIT
// Package: subiso
//
// engine.go — one backtracking worker.
//
// Step (at current depth L, pattern vertex pv = sorted[L+1] next):
//  1. Candidates = ∩ rows of the depths required adjacent (all vertices
//     when there is none).
//  2. Induced only: remove ∪ rows of the depths required non-adjacent.
//  3. Remove the vertices fixed at depths 0..L (injectivity).
//  4. Keep c with deg(pv) ≤ deg(c), attr(pv) == attr(c) and, in semantic
//     mode, equal edge labels towards every adjacent depth.
//  5. Queue c at depth L+1, or record a full row when L+1 is the last depth.
//  6. dfsStack.update descends or backtracks.
//
// Bit targets run steps 1–3 as word-parallel AND/ANDN over bit rows; list
// targets run them over sorted neighbor rows with generation-stamped
// forbid/count arrays so nothing is cleared between steps.

package subiso

import (
	"log/slog"

	"github.com/katalvlaran/subiso/bitvec"
)

// engine holds the private state of one worker goroutine.
type engine struct {
	id int
	b  *bundle

	// Shared read-only inputs
	pattern  *Graph
	target   *Graph
	sorted   []int
	conds    []Condition
	induced  bool
	semantic bool
	last     int // depth of the final pattern vertex

	// Frontier
	stack  *dfsStack
	global *globalStack

	// Bit scratch
	cand *bitvec.BitVector
	ids  []int

	// List scratch
	forbid   []uint32
	countGen []uint32
	count    []int32
	gen      uint32
	buf      []int

	sols solutions

	// Counters
	explored int64
	donated  int64
	stolen   int64

	log *slog.Logger
}

func newEngine(id int, b *bundle) *engine {
	n := b.target.VertexCount()
	e := &engine{
		id:       id,
		b:        b,
		pattern:  b.pattern,
		target:   b.target,
		sorted:   b.ord.Sorted,
		conds:    b.ord.Conditions,
		induced:  b.opts.Kind == Induced,
		semantic: b.semantic,
		last:     len(b.ord.Sorted) - 1,
		stack:    newDFSStack(len(b.ord.Sorted)),
		global:   b.global,
		log:      b.log.With("engineID", id),
	}
	if b.target.Representation() == BitRepresentation {
		e.cand = bitvec.MustNew(n)
		e.ids = make([]int, n)
	} else {
		e.forbid = make([]uint32, n)
		e.countGen = make([]uint32, n)
		e.count = make([]int32, n)
		e.buf = make([]int, 0, b.target.MaxDegree())
	}

	return e
}

// seed queues first-level candidates.
func (e *engine) seed(vertices []int) {
	for _, v := range vertices {
		e.stack.pushIntoCurrentLevel(v)
	}
}

// run drives the search until the frontier and the global stack are both
// exhausted, or the bundle halts.
func (e *engine) run() {
	e.log.Debug("Engine started.", "seeds", e.stack.levelSize(0))

	for !e.b.stopping() {
		if e.stack.empty() {
			if !e.global.await(e.stack) {
				break
			}
			e.stolen++
			continue
		}
		if e.b.onExplore != nil {
			e.b.onExplore(e)
		}

		var more bool
		if e.cand != nil {
			more = e.exploreBits()
		} else {
			more = e.exploreList()
		}
		e.explored++
		if !more {
			break
		}
		e.stack.update()

		if e.global.hungry() && e.stack.statesInStack() > 1 && e.global.push(e.stack) {
			e.donated++
		}
	}

	e.log.Debug("Engine finished.",
		"explored", e.explored, "donated", e.donated, "stolen", e.stolen, "solutions", e.sols.len())
}

// exploreBits computes the candidates for depth current+1 on bit rows.
// It returns false once the bundle refused a solution.
func (e *engine) exploreBits() bool {
	level := e.stack.currentLevel()
	next := level + 1
	cond := e.conds[next]
	cand := e.cand

	adj := cond.Adjacent()
	if len(adj) == 0 {
		cand.Fill()
	} else {
		cand.CopyFrom(e.target.rows[e.stack.top(adj[len(adj)-1])])
		for k := len(adj) - 2; k >= 0; k-- {
			cand.And(e.target.rows[e.stack.top(adj[k])])
		}
	}
	if e.induced {
		for _, j := range cond.NonAdjacent() {
			cand.AndNot(e.target.rows[e.stack.top(j)])
		}
	}
	for l := 0; l <= level; l++ {
		cand.Unset(e.stack.top(l))
	}

	n := cand.VertexIDs(e.ids)

	return e.extend(next, e.ids[:n])
}

// exploreList computes the candidates for depth current+1 on neighbor rows.
func (e *engine) exploreList() bool {
	level := e.stack.currentLevel()
	next := level + 1
	cond := e.conds[next]
	gen := e.nextGeneration()

	for l := 0; l <= level; l++ {
		e.forbid[e.stack.top(l)] = gen
	}
	if e.induced {
		for _, j := range cond.NonAdjacent() {
			for _, w := range e.target.Neighbors(e.stack.top(j)) {
				e.forbid[w] = gen
			}
		}
	}

	buf := e.buf[:0]
	adj := cond.Adjacent()
	if len(adj) == 0 {
		for v := 0; v < e.target.VertexCount(); v++ {
			if e.forbid[v] != gen {
				buf = append(buf, v)
			}
		}
	} else {
		// Scan the shortest row; count hits from the others.
		pivot := adj[0]
		for _, a := range adj[1:] {
			if e.target.Degree(e.stack.top(a)) < e.target.Degree(e.stack.top(pivot)) {
				pivot = a
			}
		}
		need := int32(len(adj) - 1)
		if need > 0 {
			for _, a := range adj {
				if a == pivot {
					continue
				}
				for _, w := range e.target.Neighbors(e.stack.top(a)) {
					if e.countGen[w] != gen {
						e.countGen[w] = gen
						e.count[w] = 0
					}
					e.count[w]++
				}
			}
		}
		for _, w := range e.target.Neighbors(e.stack.top(pivot)) {
			if e.forbid[w] == gen {
				continue
			}
			if need > 0 && (e.countGen[w] != gen || e.count[w] != need) {
				continue
			}
			buf = append(buf, w)
		}
	}
	e.buf = buf

	return e.extend(next, buf)
}

// nextGeneration invalidates every stamp in O(1), clearing on wrap-around.
func (e *engine) nextGeneration() uint32 {
	e.gen++
	if e.gen == 0 {
		clear(e.forbid)
		clear(e.countGen)
		e.gen = 1
	}

	return e.gen
}

// extend filters candidates for depth next and queues or records them.
func (e *engine) extend(next int, candidates []int) bool {
	pv := e.sorted[next]
	for _, c := range candidates {
		if !e.matchVertex(pv, c) || !e.semanticMatch(next, c) {
			continue
		}
		if next == e.last {
			if !e.record(c) {
				return false
			}
			continue
		}
		e.stack.pushIntoNextLevel(c)
	}

	return true
}

// matchVertex is the unary feasibility test for mapping pv to c.
func (e *engine) matchVertex(pv, c int) bool {
	return e.pattern.Degree(pv) <= e.target.Degree(c) &&
		e.pattern.Attribute(pv) == e.target.Attribute(c)
}

// semanticMatch compares edge labels towards every adjacent depth.
func (e *engine) semanticMatch(next, c int) bool {
	if !e.semantic {
		return true
	}
	pv := e.sorted[next]
	for _, j := range e.conds[next].Adjacent() {
		if e.pattern.EdgeAttribute(e.sorted[j], pv) != e.target.EdgeAttribute(e.stack.top(j), c) {
			return false
		}
	}

	return true
}

// record stores the row fixed at depths 0..last-1 plus c.
// It returns false when the search must stop.
func (e *engine) record(c int) bool {
	admitted, more := e.b.admit()
	if !admitted {
		return false
	}
	row := make([]int, e.last+1)
	for l := 0; l < e.last; l++ {
		row[l] = e.stack.top(l)
	}
	row[e.last] = c
	e.sols.add(&row)

	return more
}
