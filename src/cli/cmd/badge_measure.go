package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/5ht2/heartbeat/src/badge"
	"github.com/spf13/cobra"
)

var badgeMeasureCmd = &cobra.Command{
	Use:   "measure TEXT...",
	Short: "Print the measured and laid out width of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildBadgeEngine(cfg.Badges)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "TEXT\tWIDTH\tPREFERRED\tFONT\n")
		for _, text := range args {
			g := eng.Layout(badge.Spec{Message: text})
			fmt.Fprintf(tw, "%q\t%.4f\t%.4f\t%s\n", text, eng.Metrics().Measure(text), g.MessageWidth, eng.Metrics().Name())
		}
		return tw.Flush()
	},
}

func init() {
	badgeMeasureCmd.Flags().StringVar(&bgFontFile, "font-file", "", "measure with this TTF/OTF instead of the built-in table")
	badgeCmd.AddCommand(badgeMeasureCmd)
}
