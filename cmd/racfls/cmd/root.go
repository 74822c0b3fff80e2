package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mRACF/pkg/core/config"
	"github.com/msto63/mRACF/pkg/core/log"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "racfls",
	Short: "RACF Command Language Server und Werkzeuge",
	Long: `racfls ist ein Language Server und Kommandozeilen-Werkzeug für die
RACF-Kommandosprache (ADDUSER, ALTUSER, PERMIT, ...).

Befehle:
  serve    - Language Server starten (stdio oder websocket)
  check    - RACF-Quelldateien prüfen
  tokens   - Token-Strom einer Datei anzeigen
  version  - Version anzeigen`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("Konfiguration laden: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("Konfiguration ungültig: %w", err)
		}

		level := log.ParseLevel(cfg.Log.Level)
		if verbose {
			level = log.LevelDebug
		}
		log.SetDefault(log.NewWithConfig(log.Config{
			Level:  level,
			Format: log.ParseFormat(cfg.Log.Format),
			Name:   "racfls",
		}))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
