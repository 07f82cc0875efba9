// SPDX-License-Identifier: MIT
// Package: subiso
//
// stack.go — vertexStack (one candidate queue) and dfsStack (one queue per
// search depth).
//
// Layout:
//   - vertexStack keeps live items in data[bottom:top]. popBottom advances
//     bottom without releasing memory; growth re-bases the live window to
//     offset 0 so the dead prefix is never copied.
//   - dfsStack level L holds the candidates queued for sorted[L]. For
//     L <= current the top item is the vertex fixed on the explored path.

package subiso

const minStackCapacity = 8

type vertexStack struct {
	data   []int
	bottom int
	top    int
}

func (s *vertexStack) size() int { return s.top - s.bottom }

func (s *vertexStack) empty() bool { return s.top == s.bottom }

func (s *vertexStack) push(v int) {
	if s.top == len(s.data) {
		s.grow()
	}
	s.data[s.top] = v
	s.top++
}

// grow doubles the buffer and copies only data[bottom:top].
func (s *vertexStack) grow() {
	capacity := 2 * len(s.data)
	if capacity < minStackCapacity {
		capacity = minStackCapacity
	}
	live := s.size()
	next := make([]int, capacity)
	copy(next, s.data[s.bottom:s.top])
	s.data = next
	s.bottom, s.top = 0, live
}

func (s *vertexStack) pop() int {
	s.top--
	v := s.data[s.top]
	s.rewindIfEmpty()

	return v
}

func (s *vertexStack) popBottom() int {
	v := s.data[s.bottom]
	s.bottom++
	s.rewindIfEmpty()

	return v
}

func (s *vertexStack) peek() int { return s.data[s.top-1] }

func (s *vertexStack) rewindIfEmpty() {
	if s.top == s.bottom {
		s.bottom, s.top = 0, 0
	}
}

func (s *vertexStack) clear() { s.bottom, s.top = 0, 0 }

// dfsStack is the whole frontier of one engine.
type dfsStack struct {
	levels  []vertexStack
	current int
}

func newDFSStack(depth int) *dfsStack {
	return &dfsStack{levels: make([]vertexStack, depth)}
}

func (d *dfsStack) depth() int { return len(d.levels) }

func (d *dfsStack) currentLevel() int { return d.current }

func (d *dfsStack) pushIntoCurrentLevel(v int) { d.levels[d.current].push(v) }

func (d *dfsStack) pushIntoNextLevel(v int) { d.levels[d.current+1].push(v) }

func (d *dfsStack) increaseLevel() { d.current++ }

// top returns the vertex fixed at level.
func (d *dfsStack) top(level int) int { return d.levels[level].peek() }

func (d *dfsStack) levelSize(level int) int { return d.levels[level].size() }

// update descends into the next level when exploration queued candidates
// there, otherwise backtracks.
func (d *dfsStack) update() {
	if d.current+1 < len(d.levels) && !d.levels[d.current+1].empty() {
		d.current++
		return
	}
	d.deleteCurrentState()
}

// deleteCurrentState drops the vertex fixed at the current level and keeps
// unwinding while a level runs empty.
func (d *dfsStack) deleteCurrentState() {
	d.levels[d.current].pop()
	for d.current > 0 && d.levels[d.current].empty() {
		d.current--
		d.levels[d.current].pop()
	}
}

// statesInStack counts queued candidates, excluding the fixed prefix.
func (d *dfsStack) statesInStack() int {
	var total int
	for i := 0; i <= d.current; i++ {
		total += d.levels[i].size()
	}

	return total - d.current
}

func (d *dfsStack) empty() bool { return d.current == 0 && d.levels[0].empty() }

func (d *dfsStack) clear() {
	for i := range d.levels {
		d.levels[i].clear()
	}
	d.current = 0
}
