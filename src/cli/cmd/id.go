package cmd

import (
	"fmt"
	"time"

	"github.com/5ht2/heartbeat/src/snowflake"
	"github.com/spf13/cobra"
)

var idCount int

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Snowflake ID commands",
}

var idNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate snowflake IDs for the configured node",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if idCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", idCount)
		}
		gen, err := snowflake.NewGenerator(uint16(cfg.Snowflake.Node))
		if err != nil {
			return err
		}
		for range idCount {
			id, err := gen.Next()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var idInspectCmd = &cobra.Command{
	Use:   "inspect ID",
	Short: "Decode a snowflake ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := snowflake.Parse(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "id:        %s\n", id)
		fmt.Fprintf(w, "time:      %s\n", id.Time().Format(time.RFC3339Nano))
		fmt.Fprintf(w, "node:      %d\n", id.Node())
		fmt.Fprintf(w, "sequence:  %d\n", id.Sequence())
		return nil
	},
}

func init() {
	idNewCmd.Flags().IntVarP(&idCount, "count", "n", 1, "number of IDs to generate")
	idCmd.AddCommand(idNewCmd, idInspectCmd)
	rootCmd.AddCommand(idCmd)
}
