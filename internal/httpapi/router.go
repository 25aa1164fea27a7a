// Package httpapi exposes the catalog, evaluator, quiz and goal workflows
// over a JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
)

// Handler is the HTTP adapter over engine.Service.
type Handler struct {
	svc     *engine.Service
	metrics *Metrics
	log     *slog.Logger
}

func NewHandler(svc *engine.Service, metrics *Metrics, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		svc:     svc,
		metrics: metrics,
		log:     log.With("module", "http"),
	}
}

// NewRouter registers every route with the request-id, recover and logging
// middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(h.recoverMiddleware)
	r.Use(h.loggingMiddleware)

	r.Get("/healthz", h.healthz)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/fields", h.listFields)
		r.Get("/approaches/{field}", h.listApproaches)
		r.Get("/approaches/{field}/{id}", h.getApproach)
		r.Post("/evaluate", h.evaluate)
		r.Get("/duration", h.parseDuration)

		r.Get("/quiz/{field}", h.quizQuestions)
		r.Post("/quiz/{field}/score", h.scoreQuiz)

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.createGoal)
			r.Get("/", h.listGoals)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getGoal)
				r.Delete("/", h.deleteGoal)
				r.Get("/evaluations", h.goalEvaluations)
				r.Post("/evaluate", h.evaluateGoal)
				r.Put("/approach", h.selectApproach)
				r.Get("/duration", h.goalDuration)
				r.Post("/quiz", h.recordQuiz)
				r.Post("/analyze", h.analyzeGoal)
			})
		})
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"state": "ok"})
}
