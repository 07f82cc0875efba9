// SPDX-License-Identifier: MIT
// Package: subiso
//
// global_stack.go — the work-sharing stack shared by all engines of one run.
//
// Layout:
//   - buf is a flat []uint64 of fixed-width records; record i occupies
//     buf[i*width:(i+1)*width] and lists one target vertex per depth,
//     padded with nullVertex.
//   - mu guards buf, count and busy. cond (bound to mu) parks idle engines.
//
// Termination:
//   - busy counts engines holding local work. An engine that runs dry
//     calls await: it leaves busy, then either steals a record (rejoining
//     busy inside the same critical section) or, once busy reaches zero
//     with nothing stored, wakes everyone and reports exhaustion.
//   - idle and records mirror the guarded counters for lock-free reads by
//     the donation heuristic; they are only written under mu.

package subiso

import (
	"sync"
	"sync/atomic"
)

const nullVertex = ^uint64(0)

type globalStack struct {
	mu    sync.Mutex
	cond  *sync.Cond
	buf   []uint64
	width int
	count int
	busy  int

	idle    atomic.Int32
	records atomic.Int32
	halted  atomic.Bool
}

func newGlobalStack(width, engines int) *globalStack {
	g := &globalStack{
		buf:   make([]uint64, width*minStackCapacity),
		width: width,
		busy:  engines,
	}
	g.cond = sync.NewCond(&g.mu)

	return g
}

// size returns the number of stored records.
func (g *globalStack) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.count
}

// hungry reports whether idle engines outnumber stored records.
func (g *globalStack) hungry() bool {
	return g.idle.Load() > g.records.Load()
}

// push donates the bottom candidate of the deepest level holding more than
// one candidate, together with the path fixed above it. It returns false
// when no level has a spare candidate.
func (g *globalStack) push(d *dfsStack) bool {
	level := -1
	for l := d.currentLevel(); l >= 0; l-- {
		if d.levelSize(l) > 1 {
			level = l
			break
		}
	}
	if level < 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if (g.count+1)*g.width > len(g.buf) {
		g.grow()
	}
	rec := g.buf[g.count*g.width : (g.count+1)*g.width]
	for l := 0; l < level; l++ {
		rec[l] = uint64(d.top(l))
	}
	rec[level] = uint64(d.levels[level].popBottom())
	for l := level + 1; l < g.width; l++ {
		rec[l] = nullVertex
	}
	g.count++
	g.records.Store(int32(g.count))
	g.cond.Signal()

	return true
}

func (g *globalStack) grow() {
	next := make([]uint64, 2*len(g.buf)+g.width)
	copy(next, g.buf[:g.count*g.width])
	g.buf = next
}

// pop replays the newest record into d, which must be empty. Records are
// replayed level by level so d ends at the deepest stored level.
func (g *globalStack) pop(d *dfsStack) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.popLocked(d)
}

func (g *globalStack) popLocked(d *dfsStack) bool {
	if g.count == 0 {
		return false
	}
	g.count--
	g.records.Store(int32(g.count))
	rec := g.buf[g.count*g.width : (g.count+1)*g.width]
	d.clear()
	for l, id := range rec {
		if id == nullVertex {
			break
		}
		if l > 0 {
			d.increaseLevel()
		}
		d.pushIntoCurrentLevel(int(id))
	}

	return true
}

// await is called by an engine whose local stack is empty. It blocks until
// a record can be stolen into d (true), or until the search is exhausted
// or halted (false).
func (g *globalStack) await(d *dfsStack) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.busy--
	g.idle.Add(1)
	defer g.idle.Add(-1)
	for {
		if g.halted.Load() {
			return false
		}
		if g.popLocked(d) {
			g.busy++
			return true
		}
		if g.busy == 0 {
			g.cond.Broadcast()
			return false
		}
		g.cond.Wait()
	}
}

// halt releases every parked engine; subsequent awaits return false.
func (g *globalStack) halt() {
	g.halted.Store(true)
	g.mu.Lock()
	g.cond.Broadcast()
	g.mu.Unlock()
}
