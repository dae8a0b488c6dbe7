package main

import (
	"os"

	"github.com/aretw0/guesser/internal/cli"
	"github.com/aretw0/guesser/internal/config"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds in the terminal",
	Long:  `Opens a round on the game server. Each line you type is a guess; after a round ends choose the next round or the menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		envFile, _ := cmd.Flags().GetString("env-file")

		cfg, err := config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, &cfg); err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")

		// Usage is for flag errors only.
		cmd.SilenceUsage = true

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.RunPlay(sigCtx, cli.PlayOptions{
			Config: cfg,
			Debug:  debug,
			Quiet:  quiet,
			In:     os.Stdin,
			Out:    os.Stdout,
			Err:    os.Stderr,
		})
	},
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg.Validate()
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("base-url", "", "Game server URL (overrides config)")
	cmd.Flags().Bool("strict", false, "Validate answers against the API contract")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().Bool("debug", false, "Enable debug logging and lifecycle traces")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)

	// 'play' is the default when no command is provided.
	rootCmd.RunE = playCmd.RunE
	addPlayFlags(rootCmd)
}
