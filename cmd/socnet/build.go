package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/network"
	"github.com/katalvlaran/socnet/pipeline"
)

const defaultTop = 10

type buildOutput struct {
	RunID     string             `json:"run_id"`
	Kind      string             `json:"kind"`
	Graph     interface{}        `json:"graph"`
	InDegree  []centrality.Entry `json:"in_degree"`
	OutDegree []centrality.Entry `json:"out_degree"`
}

func newBuildCmd(f *runFlags) *cobra.Command {
	var (
		top      int
		asJSON   bool
		elements bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one interaction network and print its degree rankings",
		Long: `Build the network of one interaction type, reduce it and rank its vertices.

Examples:
  socnet build -i tweets.csv -t retweet
  socnet build -i tweets.csv -t mention --giant --aggregation hard --threshold 2
  socnet build -i tweets.csv -c socnet.yaml --json --elements`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			b, err := f.load()
			if err != nil {
				return err
			}
			r := pipeline.NewRunner(pipeline.WithLogger(newLogger(cmd, cfg)))
			res, err := r.Run(cmd.Context(), b, cfg)
			if err != nil {
				return err
			}

			if !asJSON {
				return printRankings(cmd.OutOrStdout(), res, top)
			}
			view, err := network.Snapshot(res.Graph)
			if err != nil {
				return err
			}
			out := buildOutput{
				RunID:     res.RunID,
				Kind:      string(res.Kind),
				Graph:     view,
				InDegree:  res.InDegree,
				OutDegree: res.OutDegree,
			}
			if elements {
				out.Graph = view.Elements()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", defaultTop, "Rows per ranking (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the graph snapshot and full rankings as JSON")
	cmd.Flags().BoolVar(&elements, "elements", false, "With --json, emit the graph as Cytoscape elements")
	return cmd
}

func printRankings(w io.Writer, res *pipeline.Result, top int) error {
	fmt.Fprintf(w, "%s network: %d vertices, %d edges (raw %d/%d)\n\n",
		res.Kind, res.Graph.VertexCount(), res.Graph.EdgeCount(), res.Raw.VertexCount, res.Raw.EdgeCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, table := range []struct {
		title string
		rows  []centrality.Entry
	}{
		{"IN-DEGREE", res.InDegree},
		{"OUT-DEGREE", res.OutDegree},
	} {
		fmt.Fprintf(tw, "%s\tNAME\tID\n", table.title)
		rows := table.rows
		if top > 0 && len(rows) > top {
			rows = rows[:top]
		}
		for _, e := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Degree, e.Name, e.ID)
		}
		fmt.Fprintln(tw, "\t\t")
	}
	return tw.Flush()
}
