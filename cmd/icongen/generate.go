package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Binkle/DefaultApplication/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().Bool("rounded", false, "Apply rounded corners to the output icons")
	rootCmd.Flags().Int("radius", 0, "Corner radius in pixels for the 1024 icon (0 = 20% of each size)")
}

// missingSourceMessage returns the diagnostic for a nonexistent source
// path, and whether the path is in fact missing.
func missingSourceMessage(path string) (string, bool) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Sprintf("Source not found: %s", path), true
	}
	return "", false
}

func runGenerate(cmd *cobra.Command, args []string) error {
	srcPath := args[0]
	rounded, _ := cmd.Flags().GetBool("rounded")
	radius, _ := cmd.Flags().GetInt("radius")

	if msg, missing := missingSourceMessage(srcPath); missing {
		fmt.Println(msg)
		os.Exit(1)
	}

	result, err := pipeline.Run(srcPath, pipeline.Options{
		Rounded: rounded,
		Radius:  radius,
		OutDir:  filepath.Join("src-tauri", "icons"),
	})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	fmt.Printf("Wrote icons to %s\n", result.OutDir)
	return nil
}
