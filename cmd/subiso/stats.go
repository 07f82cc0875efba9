package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/topology"
)

// graphStats is the YAML output of the stats command.
type graphStats struct {
	Vertices       int     `yaml:"vertices"`
	Edges          int     `yaml:"edges"`
	MaxDegree      int     `yaml:"max_degree"`
	AverageDegree  float64 `yaml:"average_degree"`
	Density        float64 `yaml:"density"`
	Representation string  `yaml:"representation"`
	VertexLabels   bool    `yaml:"vertex_labels"`
	EdgeLabels     bool    `yaml:"edge_labels"`
}

func newStatsCmd() *cobra.Command {
	var (
		graphPath string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print size and density figures of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if graphPath == "" {
				return fmt.Errorf("--graph: %w", errMissingGraph)
			}
			t, err := topology.LoadFile(graphPath)
			if err != nil {
				return err
			}
			s, err := collectStats(t)
			if err != nil {
				return err
			}

			switch format {
			case formatYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(s)
			case formatText:
				fmt.Fprintf(cmd.OutOrStdout(),
					"vertices=%d edges=%d max_degree=%d average_degree=%.3f density=%.4f representation=%s\n",
					s.Vertices, s.Edges, s.MaxDegree, s.AverageDegree, s.Density, s.Representation)
				return nil
			default:
				return fmt.Errorf("%q: %w", format, errUnknownFormat)
			}
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph YAML file")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or yaml")

	return cmd
}

func collectStats(t *topology.Topology) (graphStats, error) {
	g, err := subiso.NewGraph(t, subiso.AutoRepresentation)
	if err != nil {
		return graphStats{}, err
	}

	return graphStats{
		Vertices:       t.VertexCount,
		Edges:          t.EdgeCount(),
		MaxDegree:      g.MaxDegree(),
		AverageDegree:  t.AverageDegree(),
		Density:        t.Density(),
		Representation: g.Representation().String(),
		VertexLabels:   t.HasVertexAttributes(),
		EdgeLabels:     t.HasEdgeAttributes(),
	}, nil
}
