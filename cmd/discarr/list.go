package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by type (movie or series)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	items, err := e.store.All()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, item := range items {
		if listType != "" && string(item.Type) != listType {
			continue
		}
		year := ""
		if item.Year > 0 {
			year = strconv.Itoa(item.Year)
		}
		disc := ""
		if item.HasPhysical {
			disc = "yes"
			if item.Barcode != nil {
				disc = *item.Barcode
			}
		}
		rows = append(rows, []string{string(item.Type), item.Title, year, disc, string(item.Source)})
	}

	renderTable([]string{"Type", "Title", "Year", "Disc", "Source"}, rows)
	return nil
}
