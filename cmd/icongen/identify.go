package main

import (
	"fmt"

	"github.com/Binkle/DefaultApplication/internal/icon"
	"github.com/Binkle/DefaultApplication/internal/imgload"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a source image without converting it",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := imgload.GetInfo(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", info.Format)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	if info.HasAlpha {
		fmt.Println("Alpha:      present")
	} else {
		fmt.Println("Alpha:      none (fully opaque after load)")
	}
	if info.Width <= icon.BaseSize && info.Height <= icon.BaseSize {
		fmt.Printf("Fit:        within %dx%d, will be centered at native size\n", icon.BaseSize, icon.BaseSize)
	} else {
		fmt.Printf("Fit:        larger than %dx%d, will be downscaled\n", icon.BaseSize, icon.BaseSize)
	}

	return nil
}
