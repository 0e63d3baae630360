package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yippiez/calib/internal/sim"
)

var simsCmd = &cobra.Command{
	Use:   "sims",
	Short: "List the bundled simulations",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(simsCmd)
}
