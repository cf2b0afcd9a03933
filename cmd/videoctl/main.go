package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/video-hunter/cmd/videoctl/commands"
	"github.com/DjordjeVuckovic/video-hunter/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	rootCmd := &cobra.Command{
		Use:          "videoctl",
		Short:        "Operate the video search backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/videoctl/.env"); err != nil {
				slog.Info("Continuing with existing environment variables", "error", err)
			}
		},
	}
	rootCmd.AddCommand(commands.NewReindexCommand(), commands.NewSearchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
