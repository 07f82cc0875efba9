package subiso_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/builder"
)

// ExampleMatch finds every ordered triangle of a 4-clique; the isolated
// fifth vertex never appears.
func ExampleMatch() {
	pattern := builder.MustBuild(nil, builder.Complete(3))
	target := builder.MustBuild(nil, builder.Complete(4), builder.Vertices(5))

	res, err := subiso.Match(context.Background(), pattern, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Table.Rows, res.Table.Cols)
	fmt.Println(res.Table.Sorted().Row(0))
	// Output:
	// 24 3
	// [0 1 2]
}

// ExampleMatch_nonInduced counts paths of length two inside a triangle,
// which only exist when chords are allowed.
func ExampleMatch_nonInduced() {
	pattern := builder.MustBuild(nil, builder.Path(3))
	target := builder.MustBuild(nil, builder.Complete(3))

	induced, _ := subiso.Match(context.Background(), pattern, target)
	loose, _ := subiso.Match(context.Background(), pattern, target, subiso.WithKind(subiso.NonInduced))
	fmt.Println(induced.Table.Rows, loose.Table.Rows)
	// Output: 0 6
}

// ExampleMatch_maxMatchCount stops after the first two embeddings.
func ExampleMatch_maxMatchCount() {
	pattern := builder.MustBuild(nil, builder.Path(2))
	target := builder.MustBuild(nil, builder.Grid(3, 3))

	res, _ := subiso.Match(context.Background(), pattern, target, subiso.WithMaxMatchCount(2))
	fmt.Println(res.Table.Rows, res.Truncated)
	// Output: 2 true
}

// ExampleTable_Sorted prints the matches of an edge in the path 0-1-2.
func ExampleTable_Sorted() {
	pattern := builder.MustBuild(nil, builder.Path(2))
	target := builder.MustBuild(nil, builder.Path(3))

	res, _ := subiso.Match(context.Background(), pattern, target)
	fmt.Print(res.Table.Sorted())
	// Output:
	// 0 1
	// 1 0
	// 1 2
	// 2 1
}
