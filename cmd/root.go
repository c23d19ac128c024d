package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "picapacity",
	Short: "Probabilistic team capacity forecasts for the next planning interval",
	Long: `picapacity projects how many story points a team can deliver in the next
planning interval. It runs Monte Carlo trials over each contributor's
historical story points per unit of capacity and reports the spread of
possible outcomes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
