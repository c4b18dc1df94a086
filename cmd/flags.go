package cmd

import (
	"fmt"
	"os"

	"github.com/gedtk/gedtree/pkg/gedtree"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gedtree.Version, gedtree.Build)
		os.Exit(0)
	}
}
