package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

type goalView struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Field                string    `json:"field"`
	Deadline             string    `json:"deadline"`
	HoursPerWeek         float64   `json:"hours_per_week"`
	HoursPerDay          *float64  `json:"hours_per_day,omitempty"`
	SkillLevel           string    `json:"skill_level"`
	CalibratedSkillLevel *string   `json:"calibrated_skill_level,omitempty"`
	HasOtherCommitments  bool      `json:"has_other_commitments"`
	SelectedApproachID   *string   `json:"selected_approach_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Plan *analysis.Plan `json:"plan,omitempty"`
}

func toGoalView(g storage.Goal) goalView {
	return goalView{
		ID:                   g.ID,
		Title:                g.Title,
		Field:                g.Field,
		Deadline:             g.Deadline,
		HoursPerWeek:         g.HoursPerWeek,
		HoursPerDay:          g.HoursPerDay,
		SkillLevel:           g.SkillLevel,
		CalibratedSkillLevel: g.CalibratedSkillLevel,
		HasOtherCommitments:  g.HasOtherCommitments,
		SelectedApproachID:   g.SelectedApproachID,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}

type createGoalRequest struct {
	Title               string   `json:"title"`
	Field               string   `json:"field"`
	Deadline            string   `json:"deadline"`
	HoursPerWeek        float64  `json:"hours_per_week"`
	HoursPerDay         *float64 `json:"hours_per_day"`
	SkillLevel          string   `json:"skill_level"`
	HasOtherCommitments bool     `json:"has_other_commitments"`
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	g, err := h.svc.CreateGoal(r.Context(), engine.CreateGoalInput{
		Title:               req.Title,
		Field:               req.Field,
		Deadline:            req.Deadline,
		HoursPerWeek:        req.HoursPerWeek,
		HoursPerDay:         req.HoursPerDay,
		SkillLevel:          req.SkillLevel,
		HasOtherCommitments: req.HasOtherCommitments,
	})
	if err != nil {
		h.fail(w, r, "create_goal", err)
		return
	}
	writeSuccess(w, http.StatusCreated, toGoalView(*g))
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context())
	if err != nil {
		h.fail(w, r, "list_goals", err)
		return
	}
	out := make([]goalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalView(g))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, err := h.svc.Goal(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get_goal", err)
		return
	}
	view := toGoalView(*g)
	plan, err := h.svc.StoredPlan(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get_goal", err)
		return
	}
	view.Plan = plan
	writeSuccess(w, http.StatusOK, view)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "delete_goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) goalEvaluations(w http.ResponseWriter, r *http.Request) {
	evs, evaluated, err := h.svc.CurrentEvaluations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "goal_evaluations", err)
		return
	}
	if evaluated {
		h.metrics.observeEvaluations(evs)
	}
	writeSuccess(w, http.StatusOK, evs)
}

func (h *Handler) evaluateGoal(w http.ResponseWriter, r *http.Request) {
	evs, err := h.svc.EvaluateGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "evaluate_goal", err)
		return
	}
	h.metrics.observeEvaluations(evs)
	writeSuccess(w, http.StatusOK, evs)
}

type selectApproachRequest struct {
	ApproachID string `json:"approach_id"`
}

func (h *Handler) selectApproach(w http.ResponseWriter, r *http.Request) {
	var req selectApproachRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	g, err := h.svc.SelectApproach(r.Context(), chi.URLParam(r, "id"), req.ApproachID)
	if err != nil {
		h.fail(w, r, "select_approach", err)
		return
	}
	writeSuccess(w, http.StatusOK, toGoalView(*g))
}

func (h *Handler) goalDuration(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GoalDuration(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "goal_duration", err)
		return
	}
	writeSuccess(w, http.StatusOK, d)
}

func (h *Handler) recordQuiz(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	res, err := h.svc.RecordQuiz(r.Context(), chi.URLParam(r, "id"), req.Answers)
	if err != nil {
		h.fail(w, r, "record_quiz", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) analyzeGoal(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.AnalyzeGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "analyze_goal", err)
		return
	}
	writeSuccess(w, http.StatusOK, plan)
}
