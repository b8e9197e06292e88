package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andsky/talekeeper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of talekeeper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("talekeeper version %s\n", talekeeper.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
