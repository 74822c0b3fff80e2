package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mRACF/internal/server"
	"github.com/msto63/mRACF/pkg/core/log"
	"github.com/msto63/mRACF/pkg/racf/catalog"
	"github.com/msto63/mRACF/pkg/utils/stringx"
)

var (
	serveTransport string
	serveListen    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Language Server starten",
	Long: `Startet den RACF Language Server.

Im stdio-Modus (Standard) spricht der Server LSP über stdin/stdout;
Log-Ausgaben gehen nach stderr. Im websocket-Modus nimmt der Server
Verbindungen unter /lsp an, eine Session pro Verbindung.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport := stringx.FromBlankDefault(serveTransport, cfg.Server.Transport)
		listen := stringx.FromBlankDefault(serveListen, cfg.Server.Listen)

		opts := server.Options{
			Catalog: catalog.Builtin(catalog.Options{
				EnableAbbreviations: cfg.Catalog.EnableAbbreviations,
			}),
			Logger: log.GetDefault(),
		}

		switch transport {
		case "stdio":
			return server.RunStdio(opts)
		case "websocket":
			return server.ListenWebSocket(listen, opts)
		default:
			return fmt.Errorf("unbekannter Transport: %s", transport)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport: stdio oder websocket")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen-Adresse für websocket (z.B. localhost:9180)")
	rootCmd.AddCommand(serveCmd)
}
