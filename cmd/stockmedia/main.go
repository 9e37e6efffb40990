package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stockmedia",
		Short: "Stock images and videos from the command line",
		Long: "StockMedia looks up and searches stock images and videos.\n" +
			"It also exposes the same lookups as MCP tools and as a Telegram bot.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/stockmedia.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newImageCmd(),
		newVideoCmd(),
		newMCPServeCmd(),
		newBotCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "StockMedia v%s\n", version)
		},
	}
}
