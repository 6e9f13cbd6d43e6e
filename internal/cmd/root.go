package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "deepgate",
	Short: "Stateless chat gateway for DeepSeek-compatible completion APIs",
	Long: `deepgate accepts structured chat requests, forwards them to a
DeepSeek-compatible completion endpoint, and normalizes the result
into a stable response shape.`,
	RunE: runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional, environment is used when omitted)")

	rootCmd.AddCommand(serveCmd)
}
