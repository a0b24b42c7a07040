// Package serve runs the HTTP front-end.
package serve

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/semreerol/Receipt-Scanner/cmd/root"
	"github.com/semreerol/Receipt-Scanner/internal/server"
)

var addr string

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the receipt processing HTTP API",
	Long: `Serve starts an HTTP server with a single processing endpoint:

  POST /api/v1/receipts/process

Send a receipt image or PDF as a multipart "file" field and receive the
extracted record as JSON. The server starts even when tesseract is missing
and reports the engine as unavailable per request instead.

Example:
  receipt-scanner serve --addr :8080`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to the configured server.addr)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	listenAddr := addr
	if listenAddr == "" {
		listenAddr = root.Cfg.Server.Addr
	}

	engine := root.NewEngine()
	if err := engine.Available(); err != nil {
		root.Log.WithError(err).Warn("OCR engine unavailable, requests will fail until tesseract is installed")
	}

	srv := server.New(engine, root.NewPipeline(), root.Log, root.Cfg.Server.MaxUploadMB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		root.Log.WithError(err).Fatal("http server failed")
	}
	root.Log.Info("server stopped")
}
