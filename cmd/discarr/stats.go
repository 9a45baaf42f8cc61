package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	stats, err := e.store.Stats()
	if err != nil {
		return err
	}

	renderTable([]string{"Movies", "Series", "Discs"}, [][]string{{
		strconv.Itoa(stats.Movies),
		strconv.Itoa(stats.Series),
		strconv.Itoa(stats.Discs),
	}})
	return nil
}
