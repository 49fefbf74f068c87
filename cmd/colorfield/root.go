package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "colorfield",
		Short:         "Color-distance fields over image pixel grids",
		Long:          "colorfield runs a shortest-path search over an image where stepping between neighbouring pixels costs their RGB difference, and renders the resulting distance field.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTraceCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the colorfield version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "colorfield", version)
		},
	}
}
