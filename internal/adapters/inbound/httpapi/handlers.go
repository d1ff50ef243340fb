package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/adapters/outbound/sample"
	"github.com/designqa/designqa/internal/domain"
)

// badRequestError marks client mistakes caught before the engine runs.
type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

type analyzeRequest struct {
	Elements        json.RawMessage         `json:"elements"`
	AnalysisOptions *domain.AnalysisOptions `json:"analysisOptions"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type reportResponse struct {
	Success    bool             `json:"success"`
	Report     *domain.Report   `json:"report"`
	SampleData []map[string]any `json:"sample_data,omitempty"`
	Version    *uint64          `json:"selectionVersion,omitempty"`
}

type selectionResponse struct {
	Success  bool                   `json:"success"`
	Count    int                    `json:"count"`
	Version  uint64                 `json:"version"`
	Elements []domain.DesignElement `json:"elements,omitempty"`
	Skipped  []skippedRecord        `json:"skipped,omitempty"`
}

type skippedRecord struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: s.cfg.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Version:   s.cfg.Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(w, r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	raw, err := decodeElements(req.Elements)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	report, err := s.cfg.Service.AnalyzeRaw(ctx, raw, s.cfg.Service.Checks(req.AnalysisOptions))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report})
}

func (s *Server) handleAnalyzeSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	report, err := s.cfg.Service.Analyze(ctx, sample.Elements(), s.cfg.Service.Checks())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report, SampleData: sample.Raw()})
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	elements, version := s.cfg.Selection.Snapshot()
	writeJSON(w, http.StatusOK, selectionResponse{
		Success:  true,
		Count:    len(elements),
		Version:  version,
		Elements: elements,
	})
}

func (s *Server) handlePutSelection(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(w, r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	raw, err := decodeElements(req.Elements)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	elements, skipped := s.cfg.Collector.Collect(raw)
	version := s.cfg.Selection.Replace(elements)

	resp := selectionResponse{Success: true, Count: len(elements), Version: version}
	for _, sk := range skipped {
		resp.Skipped = append(resp.Skipped, skippedRecord{Index: sk.Index, Error: sk.Err.Error()})
	}
	s.logger.Debug("selection replaced",
		zap.String("request_id", requestID(r.Context())),
		zap.Int("count", len(elements)),
		zap.Int("skipped", len(skipped)),
		zap.Uint64("version", version),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	version := s.cfg.Selection.Clear()
	writeJSON(w, http.StatusOK, selectionResponse{Success: true, Version: version})
}

func (s *Server) handleAnalyzeSelection(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(w, r, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	report, version, err := s.cfg.Service.AnalyzeSelection(ctx, req.AnalysisOptions)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: report, Version: &version})
}

// decodeAnalyzeRequest reads the JSON body. When required is false an empty
// body yields an empty request.
func decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request, required bool) (analyzeRequest, error) {
	var req analyzeRequest
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, badRequest("request body exceeds %d bytes", maxBodyBytes)
		}
		return req, badRequest("reading body: %v", err)
	}
	if len(body) == 0 {
		if required {
			return req, badRequest("No data provided")
		}
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, badRequest("invalid JSON: %v", err)
	}
	return req, nil
}

// decodeElements accepts a missing or null list as empty.
func decodeElements(msg json.RawMessage) ([]map[string]any, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return []map[string]any{}, nil
	}
	var raw []map[string]any
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, badRequest("elements must be an array of objects")
	}
	return raw, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Analysis failed: " + err.Error()
	var br *badRequestError
	switch {
	case errors.As(err, &br):
		status = http.StatusBadRequest
		msg = br.msg
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	log := s.logger.Warn
	if status >= http.StatusInternalServerError {
		log = s.logger.Error
	}
	log("request failed",
		zap.String("request_id", requestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeError(w, status, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
