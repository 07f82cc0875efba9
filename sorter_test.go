package subiso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/builder"
)

func TestOrder_PathInPath(t *testing.T) {
	t.Parallel()

	// Inner vertices are rarer (2 of 4 target vertices have degree 2).
	p4 := builder.MustBuild(nil, builder.Path(4))
	ord := subiso.Order(p4, p4)
	require.Equal(t, []int{1, 2, 0, 3}, ord.Sorted)
	require.Equal(t, []subiso.Condition{
		{Array: []int{}, Divider: 0},
		{Array: []int{0}, Divider: 0},
		{Array: []int{1, 0}, Divider: 1},
		{Array: []int{0, 2, 1}, Divider: 2},
	}, ord.Conditions)
	require.NoError(t, ord.Validate(p4))
}

func TestOrder_PrefersRareAttributes(t *testing.T) {
	t.Parallel()

	attr := builder.WithAttributeFn(func(v int) int {
		if v == 2 {
			return 7
		}
		return 0
	})
	pattern := builder.MustBuild([]builder.BuilderOption{attr}, builder.Path(3))
	target := builder.MustBuild([]builder.BuilderOption{attr}, builder.Cycle(6))
	ord := subiso.Order(pattern, target)
	require.Equal(t, 2, ord.Sorted[0])
	require.Equal(t, 1, ord.Sorted[1])
}

func TestOrder_Disconnected(t *testing.T) {
	t.Parallel()

	pattern := builder.MustBuild(nil, builder.Path(2), builder.Vertices(3))
	ord := subiso.Order(pattern, builder.MustBuild(nil, builder.Complete(4)))
	require.Len(t, ord.Sorted, 3)
	require.Equal(t, 2, ord.Sorted[2], "the isolated vertex comes last")
	require.Empty(t, ord.Conditions[2].Adjacent())
	require.Equal(t, []int{0, 1}, ord.Conditions[2].NonAdjacent())
}

func TestOrder_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, subiso.Order(nil, nil).Sorted)
	empty := builder.MustBuild(nil, builder.Vertices(0))
	require.Empty(t, subiso.Order(empty, empty).Sorted)
}

func TestOrdering_Validate(t *testing.T) {
	t.Parallel()

	p3 := builder.MustBuild(nil, builder.Path(3))
	good := subiso.Order(p3, p3)
	require.NoError(t, good.Validate(p3))
	require.ErrorIs(t, good.Validate(nil), subiso.ErrNilGraph)

	tests := []struct {
		name string
		ord  subiso.Ordering
	}{
		{"short", subiso.Ordering{Sorted: []int{0, 1}, Conditions: good.Conditions}},
		{"out of range", subiso.Ordering{Sorted: []int{0, 1, 3}, Conditions: good.Conditions}},
		{"bad divider", subiso.Ordering{Sorted: good.Sorted, Conditions: []subiso.Condition{
			{}, {Array: []int{0}, Divider: 2}, good.Conditions[2],
		}}},
		{"repeated depth", subiso.Ordering{Sorted: good.Sorted, Conditions: []subiso.Condition{
			{}, good.Conditions[1], {Array: []int{0, 0}, Divider: 1},
		}}},
		{"wrong partition", subiso.Ordering{Sorted: []int{0, 1, 2}, Conditions: []subiso.Condition{
			{}, {Array: []int{0}, Divider: 1}, {Array: []int{0, 1}, Divider: 1},
		}}},
	}
	for _, tc := range tests {
		require.ErrorIs(t, tc.ord.Validate(p3), subiso.ErrInvalidOrdering, tc.name)
	}
}
