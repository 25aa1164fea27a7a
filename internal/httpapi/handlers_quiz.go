package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

func (h *Handler) quizQuestions(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, quiz.ForField(chi.URLParam(r, "field")))
}

type answersRequest struct {
	Answers map[string]string `json:"answers"`
}

func (h *Handler) scoreQuiz(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	res, err := quiz.Score(quiz.ForField(chi.URLParam(r, "field")), req.Answers)
	if err != nil {
		h.fail(w, r, "score_quiz", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}
