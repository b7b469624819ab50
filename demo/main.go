package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const VERSION = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:          "navpath",
		Short:        "navigation mesh polytope, link and path tools",
		Version:      VERSION,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(BuildCmd(), LinkCmd(), PathCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
