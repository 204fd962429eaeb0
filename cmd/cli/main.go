package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	outputFmt  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "taskcli",
		Short:         "Parse, analyze and summarize tasks from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch outputFmt {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", outputFmt)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", outputJSON, "Output format: json or yaml")

	rootCmd.AddCommand(
		parseCmd(),
		summarizeCmd(),
		analyzeCmd(),
		tipCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
