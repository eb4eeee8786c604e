package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/telecare/telecare_backend/cmd/http"
	systemcmd "github.com/telecare/telecare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "telecare",
	Short: "Telecare patient-doctor telehealth backend.",
	Long: `Telecare is a telehealth backend that connects patients with doctors.
It handles accounts, an onboarding wizard ending in doctor assignment, and
a realtime chat channel per patient-doctor pair.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
