package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/justchokingaround/showcase/internal/tui"
)

// listCmd prints the catalog cards
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every show in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.PrintCatalog(os.Stdout, dataset, tui.Options{Locale: cfg.Catalog.DateLocale})
	},
}

// showCmd prints the detail view of one show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the details of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expand, _ := cmd.Flags().GetBool("expand")
		return tui.PrintDetail(os.Stdout, dataset, args[0], expand, tui.Options{Locale: cfg.Catalog.DateLocale})
	},
}

func init() {
	showCmd.Flags().Bool("expand", false, "show the full description")
}
