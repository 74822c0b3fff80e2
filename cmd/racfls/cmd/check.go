package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/mRACF/pkg/racf/ast"
	"github.com/msto63/mRACF/pkg/racf/catalog"
	"github.com/msto63/mRACF/pkg/racf/document"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var checkCmd = &cobra.Command{
	Use:   "check <datei>...",
	Short: "RACF-Quelldateien prüfen",
	Long: `Prüft RACF-Quelldateien auf strukturelle Fehler und zeigt die
erkannten Kommandos an. Mit --verbose wird die Segmentstruktur jedes
Kommandos ausgegeben.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Builtin(catalog.Options{
			EnableAbbreviations: cfg.Catalog.EnableAbbreviations,
		})

		failed := false
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				printError("Datei lesen", err)
				failed = true
				continue
			}

			doc := document.Build(string(data), document.Options{Classify: cat})
			diags := doc.Diagnostics()

			fmt.Println(fileStyle.Render(path))
			for _, c := range doc.Commands() {
				header := fmt.Sprintf("  %s", c.Name)
				if len(c.Arguments) > 0 {
					header += fmt.Sprintf(" (%s)", strings.Join(c.Arguments, " "))
				}
				header += dimStyle.Render(fmt.Sprintf("  [Zeile %d-%d]", c.StartLine+1, c.EndLine+1))
				fmt.Println(header)

				if verbose {
					printStructure(c)
				}
			}

			if len(diags) == 0 {
				fmt.Printf("  %s %d Kommandos, keine Fehler\n",
					okStyle.Render("OK"), len(doc.Commands()))
				continue
			}

			failed = true
			for _, d := range diags {
				fmt.Printf("  %s Zeile %d, Spalte %d: %s\n",
					errStyle.Render("FEHLER"), d.Line+1, d.Column+1, d.Message)
			}
		}

		if failed {
			return fmt.Errorf("Prüfung fehlgeschlagen")
		}
		return nil
	},
}

// printStructure renders the parsed segment tree of one command
func printStructure(c *ast.Command) {
	for _, flag := range c.FlagNames() {
		fmt.Printf("    %s %s\n", dimStyle.Render("flag"), flag)
	}
	for name, v := range c.Keywords {
		fmt.Printf("    %s %s%s\n", dimStyle.Render("wert"), name, v.String())
	}
	ast.Walk(c, ast.SegmentVisitorFunc(func(_ *ast.Command, seg *ast.Segment, depth int) {
		indent := strings.Repeat("  ", depth+2)
		fmt.Printf("%s%s %s\n", indent, dimStyle.Render("segment"), seg.Name)
	}))
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
