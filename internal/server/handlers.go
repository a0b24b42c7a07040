package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
	"github.com/semreerol/Receipt-Scanner/internal/parsererror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProcessReceipt accepts a multipart upload under the "file" field, runs
// OCR and extraction, and answers with the structured record. Client mistakes
// (no file, empty file, unreadable scan) are 400s; an unavailable OCR engine
// or an internal failure is a 500, and the process keeps serving either way.
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read upload"})
		return
	}
	if len(data) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty file upload"})
		return
	}

	if err := s.recognizer.Available(); err != nil {
		s.logger.WithError(err).Error("ocr engine unavailable")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ocr engine unavailable"})
		return
	}

	doc, err := s.recognizer.RecognizeBytes(r.Context(), data, filepath.Ext(header.Filename))
	if err != nil {
		var unavailable *parsererror.OCRUnavailableError
		var empty *parsererror.EmptyInputError
		switch {
		case errors.As(err, &unavailable):
			s.logger.WithError(err).Error("ocr engine unavailable")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ocr engine unavailable"})
		case errors.As(err, &empty):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty file upload"})
		default:
			wrapped := &parsererror.ExtractionError{Stage: "recognition", Err: err}
			s.logger.WithError(wrapped).WithField(logging.FieldFile, header.Filename).Error("recognition failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to process receipt"})
		}
		return
	}

	if doc.Text == "" {
		s.logger.WithError(&parsererror.NoTextError{Source: header.Filename}).Warn("rejecting upload")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no recognizable text in upload"})
		return
	}

	rec := s.pipeline.Process(doc.Text)
	category, _ := rec.Get(models.FieldCategory)
	s.logger.Info("receipt processed",
		logging.Field{Key: logging.FieldFile, Value: header.Filename},
		logging.Field{Key: logging.FieldCategory, Value: category},
	)
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// headers already sent, nothing left to do
		_ = err
	}
}
