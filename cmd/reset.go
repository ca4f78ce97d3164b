package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetDataCmd = &cobra.Command{
	Use:   "reset-data",
	Short: "Delete all tasks, history and counters, and restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to delete all data without --force")
		}
		eng.ResetAllData()
		fmt.Println("All data reset.")
		return nil
	},
}

func init() {
	resetDataCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm the reset")
}
