// Package main implements the tablero dashboard and its headless commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Project dashboard with drag and drop reassignment",
	Long: `tablero shows projects by priority, status and owner.

Drag a project onto a lane to change its priority, onto a status column to
move it, or onto a person to make them the owner. Drag a person onto a task
to assign it. The keyboard works too: space grabs, j/k pick a target and
enter drops.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tablero v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tablero/config.toml)")
	rootCmd.AddCommand(versionCmd)
}

// openApp loads the config and opens the store. Only the dashboard takes
// the single instance lock.
func openApp(lock bool) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, app.Options{Lock: lock})
}
