package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icongen [source]",
	Short: "Convert a source image into the app icon PNG set",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
