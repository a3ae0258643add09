package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/PixelPerfect/config"
	"github.com/dixieflatline76/PixelPerfect/pkg/imagesource"
)

var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "List the effects accepted by --effect",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range imagesource.Effects() {
			fmt.Fprintln(cmd.OutOrStdout(), e)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
	},
}
