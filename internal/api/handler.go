package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"hockeyseo/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	errMethodNotAllowed = "Method not allowed"
	errMissingFields    = "Missing required fields: teamName and keywords array"
	errAnalysisFailed   = "Analysis failed"
)

// ErrInvalidRequest marks a request body that fails validation.
var ErrInvalidRequest = errors.New("invalid analyze request")

// Analyzer runs an analysis for a validated request.
type Analyzer interface {
	RunAnalysis(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResponse, error)
}

// Handler serves the analysis API.
type Handler struct {
	analyzer     Analyzer
	maxBodyBytes int64
}

// NewHandler creates a Handler. maxBodyBytes caps the request body size.
func NewHandler(analyzer Analyzer, maxBodyBytes int64) *Handler {
	return &Handler{analyzer: analyzer, maxBodyBytes: maxBodyBytes}
}

// Routes returns the fully wrapped HTTP handler.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", h.analyzeHandler)
	mux.HandleFunc("/api/analyze", h.analyzeHandler)
	mux.HandleFunc("/health", healthCheckHandler)

	return requestIDMiddleware(accessLogMiddleware(corsMiddleware(recoverMiddleware(mux))))
}

func (h *Handler) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed, "")
		return
	}

	req, err := parseAnalyzeRequest(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		logrus.WithField("request_id", RequestIDFromContext(r.Context())).Debugf("Rejected request: %v", err)
		writeError(w, http.StatusBadRequest, errMissingFields, "")
		return
	}

	resp, err := h.analyzer.RunAnalysis(r.Context(), req)
	if err != nil {
		logrus.WithField("request_id", RequestIDFromContext(r.Context())).Errorf("Analysis error: %v", err)
		writeError(w, http.StatusInternalServerError, errAnalysisFailed, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseAnalyzeRequest requires a non-empty string teamName and a keywords
// array of strings. An empty keywords array is accepted. league and email
// are kept only when they are strings.
func parseAnalyzeRequest(body io.Reader) (models.AnalyzeRequest, error) {
	var raw struct {
		TeamName json.RawMessage `json:"teamName"`
		League   json.RawMessage `json:"league"`
		Keywords json.RawMessage `json:"keywords"`
		Email    json.RawMessage `json:"email"`
	}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return models.AnalyzeRequest{}, fmt.Errorf("%w: decoding body: %v", ErrInvalidRequest, err)
	}

	var req models.AnalyzeRequest
	if err := json.Unmarshal(raw.TeamName, &req.TeamName); err != nil || req.TeamName == "" {
		return models.AnalyzeRequest{}, fmt.Errorf("%w: teamName must be a non-empty string", ErrInvalidRequest)
	}
	keywords, err := parseKeywords(raw.Keywords)
	if err != nil {
		return models.AnalyzeRequest{}, err
	}
	req.Keywords = keywords

	if league, ok := optionalString(raw.League); ok {
		req.League = &league
	}
	req.Email, _ = optionalString(raw.Email)

	return req, nil
}

func parseKeywords(data json.RawMessage) ([]string, error) {
	var items []*string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil, fmt.Errorf("%w: keywords must be an array of strings", ErrInvalidRequest)
	}
	keywords := make([]string, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: keywords[%d] is null", ErrInvalidRequest, i)
		}
		keywords = append(keywords, *item)
	}
	return keywords, nil
}

// optionalString reports whether data holds a JSON string. Absent, null and
// non-string values are treated alike.
func optionalString(data json.RawMessage) (string, bool) {
	var s *string
	if len(data) == 0 || json.Unmarshal(data, &s) != nil || s == nil {
		return "", false
	}
	return *s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg, Message: detail})
}
