package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/pipeline"
	"github.com/katalvlaran/socnet/tweet"
)

func newSummaryCmd(f *runFlags) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Build every interaction network concurrently and print their sizes",
		Long: `Run the configured window and reduction for mention, retweet, reply and quote
at once. The --type flag is ignored.`,
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
			r := pipeline.NewRunner(
				pipeline.WithLogger(newLogger(cmd, cfg)),
				pipeline.WithConcurrency(parallel),
			)
			results, err := r.RunKinds(cmd.Context(), b, cfg, tweet.Kinds()...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tRAW VERTICES\tRAW EDGES\tVERTICES\tEDGES\tTOP IN-DEGREE")
			for _, res := range results {
				lead := "-"
				if len(res.InDegree) > 0 {
					lead = fmt.Sprintf("%s (%d)", res.InDegree[0].Name, res.InDegree[0].Degree)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", res.Kind,
					res.Raw.VertexCount, res.Raw.EdgeCount,
					res.Graph.VertexCount(), res.Graph.EdgeCount(), lead)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "Maximum kinds processed at once (0 = all)")
	return cmd
}
