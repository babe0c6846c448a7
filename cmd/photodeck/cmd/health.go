package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := conn.Health(cmd.Context()); err != nil {
			return fmt.Errorf("backend %s is not healthy: %w", conn.BaseURL(), err)
		}
		fmt.Printf("backend %s is healthy\n", conn.BaseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
