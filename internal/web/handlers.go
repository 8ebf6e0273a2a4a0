package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/JonMunkholm/griptip/internal/core"
	"github.com/JonMunkholm/griptip/internal/logging"
	"github.com/JonMunkholm/griptip/internal/observability"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// handleProducts converts the configured input sheet.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	s.serveConversion(w, r, func() ([]byte, error) {
		return core.ReadInput(s.cfg.Pipeline.Input, s.cfg.Pipeline.MaxFileSize)
	})
}

// handleConvert converts the sheet sent with the request, either as the raw
// body or as the multipart field "file".
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Pipeline.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	s.serveConversion(w, r, func() ([]byte, error) {
		data, err := readSheet(r, maxSize)
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, core.ErrEmptyFile
		}
		return data, nil
	})
}

// serveConversion runs one conversion under the limiter and writes the
// document or the mapped error.
func (s *Server) serveConversion(w http.ResponseWriter, r *http.Request, load func() ([]byte, error)) {
	if err := s.limiter.Acquire(r.Context()); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	defer s.limiter.Release()

	ctx, _ := logging.WithRun(r.Context(), observability.SourceServer)
	r = r.WithContext(ctx)

	doc, err := s.convert(ctx, load)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := core.EncodeDocument(&buf, doc); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (s *Server) convert(ctx context.Context, load func() ([]byte, error)) (core.Document, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	data, err := load()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.metrics.RecordRun(observability.SourceServer, core.Stats{}, time.Since(start), err)
		return core.Document{}, err
	}

	doc, stats, err := core.Convert(data)
	s.metrics.RecordRun(observability.SourceServer, stats, time.Since(start), err)
	if err != nil {
		return core.Document{}, err
	}

	if len(stats.MissingColumns) > 0 {
		logger.Warn("sheet is missing expected columns", "columns", stats.MissingColumns)
	}
	logger.Debug("conversion finished",
		"rows", stats.RowsRead,
		"blank", stats.BlankRows,
		"inactive", stats.InactiveRows,
		"products", stats.Products,
		"delimiter", string(stats.Delimiter),
	)
	return doc, nil
}

// readSheet extracts the CSV payload from r.
func readSheet(r *http.Request, maxSize int64) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, bodyError(err, maxSize)
		}
		return data, nil
	}

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, bodyError(err, maxSize)
	}

	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, core.ErrNoFile
	}
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	return data, nil
}

func bodyError(err error, maxSize int64) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return fmt.Errorf("%w: request body exceeds %d bytes", core.ErrFileTooLarge, maxSize)
	}
	return fmt.Errorf("%w: %w", core.ErrNoFile, err)
}
