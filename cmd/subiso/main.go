// Command subiso enumerates subgraph isomorphisms between two YAML graphs.
//
// Usage:
//
//	subiso match --pattern triangle.yaml --target social.yaml --max-matches 100
//	subiso stats --graph social.yaml
//
// Graph files use the topology document shape:
//
//	vertices: 3
//	edges: [[0, 1], [1, 2], [2, 0]]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
