package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mRACF/pkg/racf/catalog"
	"github.com/msto63/mRACF/pkg/racf/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <datei>",
	Short: "Token-Strom einer Datei anzeigen",
	Long: `Zeigt den Token-Strom einer RACF-Quelldatei mit Typ, Wert und
Position an. Nützlich zur Fehlersuche bei Klassifizierungsfragen.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			printError("Datei lesen", err)
			return err
		}

		cat := catalog.Builtin(catalog.Options{
			EnableAbbreviations: cfg.Catalog.EnableAbbreviations,
		})

		for _, tok := range parser.Tokenize(string(data), cat) {
			fmt.Printf("%4d:%-3d %-14s %s\n",
				tok.Line+1, tok.Column+1, tok.Type.String(), tok.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
