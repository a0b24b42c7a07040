// Package server exposes the receipt pipeline over HTTP. One endpoint accepts
// a receipt upload and returns the structured record as JSON.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/semreerol/Receipt-Scanner/internal/extractor"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// Recognizer is the OCR dependency of the server. The concrete engine shells
// out to tesseract; tests plug in a stub.
type Recognizer interface {
	Available() error
	RecognizeBytes(ctx context.Context, data []byte, ext string) (models.RecognizedDocument, error)
}

// Server wires the HTTP routes to the recognizer and the extraction pipeline.
type Server struct {
	router      chi.Router
	recognizer  Recognizer
	pipeline    *extractor.Pipeline
	logger      logging.Logger
	maxUploadMB int64
}

// New builds a Server. maxUploadMB bounds the accepted upload size; zero or
// negative falls back to 10 MB.
func New(recognizer Recognizer, pipeline *extractor.Pipeline, logger logging.Logger, maxUploadMB int64) *Server {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}

	s := &Server{
		recognizer:  recognizer,
		pipeline:    pipeline,
		logger:      logger,
		maxUploadMB: maxUploadMB,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/receipts/process", s.handleProcessReceipt)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.Field{Key: "addr", Value: addr})
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
