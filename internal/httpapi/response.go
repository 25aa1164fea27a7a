package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

type apiError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, map[string]any{
		"status": "success",
		"data":   data,
	})
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func mapError(err error) (int, string, string) {
	var (
		nf engine.NotFoundError
		ve engine.ValidationError
		se *analysis.StatusError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, "NOT_FOUND", nf.Error()
	case errors.As(err, &ve):
		return http.StatusBadRequest, "VALIDATION_ERROR", ve.Error()
	case errors.Is(err, quiz.ErrIncomplete), errors.Is(err, quiz.ErrUnknownOption):
		return http.StatusBadRequest, "INVALID_ANSWERS", err.Error()
	case errors.Is(err, engine.ErrAnalysisDisabled):
		return http.StatusServiceUnavailable, "ANALYSIS_DISABLED", err.Error()
	case errors.As(err, &se), errors.Is(err, analysis.ErrInvalidPlan):
		return http.StatusBadGateway, "UPSTREAM_ERROR", "analysis service failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}
