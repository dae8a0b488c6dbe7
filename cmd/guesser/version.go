package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/guesser"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of guesser",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "guesser version %s\n", strings.TrimSpace(guesser.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
