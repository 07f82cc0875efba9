package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/topology"
)

// matchReport is the YAML output of the match command.
type matchReport struct {
	Matches   int     `yaml:"matches"`
	Truncated bool    `yaml:"truncated"`
	Engines   int     `yaml:"engines"`
	Explored  int64   `yaml:"explored"`
	Donated   int64   `yaml:"donated"`
	Stolen    int64   `yaml:"stolen"`
	Rows      [][]int `yaml:"rows,flow"`
}

func newMatchCmd(verbose *bool) *cobra.Command {
	var (
		configPath string
		set        = defaultMatchConfig()
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Search embeddings of a pattern graph in a target graph",
		Long: `Search every embedding of --pattern into --target and print one row per
embedding. Column j of a row is the target vertex matched to pattern vertex j.
Row order is unspecified; use --sorted for a stable listing.

Flags override values read from --config.`,
		Example: `  subiso match --pattern p.yaml --target t.yaml
  subiso match --config run.yaml --max-matches 10 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMatchConfig(configPath)
			if err != nil {
				return err
			}
			cfg.overrideFrom(cmd.Flags(), set)
			sorted, _ := cmd.Flags().GetBool("sorted")

			return runMatch(cmd, cfg, sorted, *verbose)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with match settings")
	f.StringVarP(&set.Pattern, "pattern", "p", "", "pattern graph YAML file")
	f.StringVarP(&set.Target, "target", "t", "", "target graph YAML file")
	f.StringVar(&set.Kind, "kind", set.Kind, "induced or non-induced")
	f.IntVarP(&set.MaxMatches, "max-matches", "k", 0, "stop after K embeddings (0 = all)")
	f.IntVar(&set.Workers, "workers", 0, "number of search engines (0 = auto)")
	f.StringVar(&set.Representation, "representation", set.Representation, "target encoding: auto, bit or list")
	f.BoolVar(&set.Semantic, "semantic", false, "require equal edge attributes on pattern edges")
	f.StringVar(&set.Format, "format", set.Format, "output format: text or yaml")
	f.Bool("sorted", false, "sort rows lexicographically before printing")

	return cmd
}

func runMatch(cmd *cobra.Command, cfg matchConfig, sorted, verbose bool) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	opts.Logger = newLogger(cmd.ErrOrStderr(), verbose)

	pattern, err := topology.LoadFile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	target, err := topology.LoadFile(cfg.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	res, err := subiso.Run(cmd.Context(), pattern, target, opts)
	if err != nil {
		return err
	}
	if sorted {
		res.Table = res.Table.Sorted()
	}

	if cfg.Format == formatYAML {
		return writeMatchYAML(cmd.OutOrStdout(), res)
	}
	fmt.Fprint(cmd.OutOrStdout(), res.Table.String())
	fmt.Fprintf(cmd.ErrOrStderr(), "matches=%d truncated=%t engines=%d explored=%d donated=%d stolen=%d\n",
		res.Table.Rows, res.Truncated, res.Stats.Engines, res.Stats.Explored, res.Stats.Donated, res.Stats.Stolen)

	return nil
}

func writeMatchYAML(w io.Writer, res subiso.Result) error {
	rep := matchReport{
		Matches:   res.Table.Rows,
		Truncated: res.Truncated,
		Engines:   res.Stats.Engines,
		Explored:  res.Stats.Explored,
		Donated:   res.Stats.Donated,
		Stolen:    res.Stats.Stolen,
		Rows:      res.Table.RowSlices(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return enc.Close()
}
