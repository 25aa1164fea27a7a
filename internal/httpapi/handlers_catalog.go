package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

func (h *Handler) listFields(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, catalog.Fields())
}

func (h *Handler) listApproaches(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	writeSuccess(w, http.StatusOK, map[string]any{
		"field":      field,
		"fallback":   !catalog.HasField(field),
		"approaches": catalog.ForField(field),
	})
}

func (h *Handler) getApproach(w http.ResponseWriter, r *http.Request) {
	field, id := chi.URLParam(r, "field"), chi.URLParam(r, "id")
	t, ok := catalog.ByID(field, id)
	if !ok {
		h.fail(w, r, "get_approach", engine.NotFoundError{Kind: "approach", ID: id})
		return
	}
	writeSuccess(w, http.StatusOK, t)
}

type evaluateRequest struct {
	Field   string             `json:"field"`
	Profile engine.UserProfile `json:"profile"`
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Profile.CurrentLevel == "" {
		req.Profile.CurrentLevel = quiz.LevelBeginner
	}
	if err := req.Profile.Validate(); err != nil {
		h.fail(w, r, "evaluate", err)
		return
	}

	evs := h.svc.Evaluator().EvaluateAll(catalog.ForField(req.Field), req.Profile)
	h.metrics.observeEvaluations(evs)
	writeSuccess(w, http.StatusOK, evs)
}

func (h *Handler) parseDuration(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("range")
	if strings.TrimSpace(raw) == "" {
		h.fail(w, r, "parse_duration", engine.ValidationError{Field: "range", Reason: "is required"})
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"range": raw,
		"weeks": engine.ParseApproachDuration(raw),
	})
}
