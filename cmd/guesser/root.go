package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guesser",
	Short: "Guesser plays word-guessing rounds against a game server",
	Long:  `Guesser connects to a game server, sends your guesses and shows the verdicts, hints and results in the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "guesser.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a dotenv file")
}
