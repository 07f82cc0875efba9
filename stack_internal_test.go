package subiso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexStack_GrowKeepsLiveWindow(t *testing.T) {
	var s vertexStack
	for v := 0; v < minStackCapacity; v++ {
		s.push(v)
	}
	// Advance bottom, then force growth: only 3..7 must survive.
	for i := 0; i < 3; i++ {
		require.Equal(t, i, s.popBottom())
	}
	s.push(100)
	require.Equal(t, 6, s.size())
	require.Equal(t, 0, s.bottom)
	require.Equal(t, 100, s.peek())

	want := []int{100, 7, 6, 5, 4, 3}
	for _, w := range want {
		require.Equal(t, w, s.pop())
	}
	require.True(t, s.empty())
	require.Zero(t, s.top)
}

func TestVertexStack_RewindOnEmpty(t *testing.T) {
	var s vertexStack
	s.push(1)
	s.push(2)
	require.Equal(t, 1, s.popBottom())
	require.Equal(t, 2, s.popBottom())
	require.True(t, s.empty())
	require.Zero(t, s.bottom)
	s.push(9)
	require.Equal(t, 9, s.data[0])
}

func TestDFSStack_UpdateDescendsAndBacktracks(t *testing.T) {
	d := newDFSStack(3)
	d.pushIntoCurrentLevel(10)
	d.pushIntoCurrentLevel(11)
	require.Equal(t, 11, d.top(0))

	// 11 gets two children: descend.
	d.pushIntoNextLevel(20)
	d.pushIntoNextLevel(21)
	d.update()
	require.Equal(t, 1, d.currentLevel())
	require.Equal(t, 21, d.top(1))
	require.Equal(t, 3, d.statesInStack()) // 10, 20, 21; 11 is fixed

	// 21 has no children: drop it, stay on level 1 with 20.
	d.update()
	require.Equal(t, 1, d.currentLevel())
	require.Equal(t, 20, d.top(1))

	// 20 has no children: level 1 empties, 11 is dropped too.
	d.update()
	require.Equal(t, 0, d.currentLevel())
	require.Equal(t, 10, d.top(0))
	require.False(t, d.empty())

	d.update()
	require.True(t, d.empty())
}

func TestDFSStack_NeverDescendsPastLastLevel(t *testing.T) {
	d := newDFSStack(1)
	d.pushIntoCurrentLevel(5)
	d.update()
	require.True(t, d.empty())
}

func TestDFSStack_Clear(t *testing.T) {
	d := newDFSStack(2)
	d.pushIntoCurrentLevel(1)
	d.pushIntoNextLevel(2)
	d.update()
	d.clear()
	require.True(t, d.empty())
	require.Zero(t, d.statesInStack())
}
