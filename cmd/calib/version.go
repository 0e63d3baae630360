package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yippiez/calib"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of calib",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calib version %s\n", calib.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
