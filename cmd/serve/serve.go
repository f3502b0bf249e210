// Package serve runs the HTTP upload endpoint.
package serve

import (
	"github.com/spf13/cobra"

	"github.com/almasriprojects/BankAPI/cmd/common"
	"github.com/almasriprojects/BankAPI/cmd/root"
	"github.com/almasriprojects/BankAPI/internal/server"
)

var listenAddr string

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statement upload HTTP API",
	Long: `Start an HTTP server exposing POST /upload-statement, which accepts a
bank statement PDF and responds with the structured statement record.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address, overriding the configured one")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	log := root.Log
	if listenAddr != "" {
		cfg.Server.Listen = listenAddr
	}

	p, cleanup, err := common.BuildPipeline(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(cfg, common.BuildExtractor(cfg, log), p, common.BuildStore(cfg, log), log)
	return srv.Listen()
}
