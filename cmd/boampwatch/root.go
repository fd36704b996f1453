package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/config"
	"github.com/jfmartel/boampwatch/internal/home"
	"github.com/jfmartel/boampwatch/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "boampwatch",
	Short: "BOAMP construction notice monitoring and extraction",
	Long: `Boampwatch monitors the BOAMP public procurement bulletin for
construction notices matching your trades and departments.

The pipeline includes:
  - Daily catalog scan with keyword and department filtering
  - Notice document retrieval with paced downloads
  - Lot number, mandatory-visit and platform link extraction
  - CSV exports of the filtered results`,
	Version: version.GitRelease,
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Write a default config file, to ~/.boampwatch/config.yaml unless a path is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			path = h.ConfigPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		cmd.Println("Wrote", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.boampwatch/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "boampwatch home directory (default: ~/.boampwatch)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
