package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pairwised <subcommand>",
	Short: "ranks candidates through head-to-head votes",
	Long:  `ranks candidates through head-to-head votes, serving sessions over the redis protocol`,
	Run:   nil,
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringP("config-file", "c", "", "Path to the config file (eg ./config.yaml) [Optional]")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panicWithError(err, "failed to execute command")
	}
}
