// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"cinder/internal/config"
	"cinder/internal/lsp"
)

const lsName = "cinder" // Name identifier for the language server

var handler protocol.Handler

func main() {
	cfg, err := config.Load(os.Getenv("CINDER_CONFIG"))
	if err != nil {
		cfg = config.Default()
	}

	// Logs must not go to stdout, which carries the protocol
	commonlog.Configure(max(cfg.Verbosity, 1), cfg.LogPath())
	log := commonlog.GetLogger("cinder.lsp")
	if err != nil {
		log.Warningf("using default configuration: %s", err)
	}

	cinderHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     cinderHandler.Initialize,
		Initialized:                    cinderHandler.Initialized,
		Shutdown:                       cinderHandler.Shutdown,
		SetTrace:                       cinderHandler.SetTrace,
		TextDocumentDidOpen:            cinderHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           cinderHandler.TextDocumentDidClose,
		TextDocumentDidChange:          cinderHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: cinderHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting cinder language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
