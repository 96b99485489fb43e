// Command roadwork schedules road maintenance closures.
//
//	roadwork solve [--config roadwork.yaml] [--seed n] [--time-limit 5s] < instance > schedule
//	roadwork generate --rows 10 --cols 12 --days 5 --capacity 30 > instance
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "roadwork",
	Short:         "Road closure day scheduler",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.AddCommand(newSolveCmd(), newGenerateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
