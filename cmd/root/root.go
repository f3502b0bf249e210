// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"github.com/almasriprojects/BankAPI/internal/config"
	"github.com/almasriprojects/BankAPI/internal/logging"
)

var (
	// Cfg holds the resolved configuration, available to all subcommands
	// after PersistentPreRunE.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bankapi",
		Short: "Parse bank statement PDFs into structured, validated records.",
		Long: `bankapi extracts the transaction ledger, summary figures and metadata
from OCR-transcribed bank statement PDFs, categorizes every transaction
and reconciles the result against the statement's own balance figures.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankapi!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("output"); dir != "" {
				cfg.Output.Directory = dir
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetLogger(Log)
			return nil
		},
	}
)

// Init configures persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringP("output", "o", "", "output directory for statement artifacts")
}
