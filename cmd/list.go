package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

var (
	onStyle  = color.New(color.FgGreen)
	offStyle = color.New(color.FgRed)
)

var listCmd = &cobra.Command{
	Use:   "list [modules...]",
	Short: "List modules and demonstrations with their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, closeStore, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, info := range engine.Catalogue(args...) {
			style := onStyle
			if info.State == tt.StateOff {
				style = offStyle
			}
			fmt.Fprintf(w, "%s/%s\t%s\n", info.Module, info.Demo, style.Sprint(info.State))
		}
		return w.Flush()
	},
}
