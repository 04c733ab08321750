package handlers

import (
	"net/http"

	"trivia/internal/models"
)

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// NextQuizQuestion returns a random question from the requested category
// that is not among previous_questions. question is null once the round
// is exhausted.
func (a *API) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, statusFor(err))
		return
	}

	categoryID, previous, err := req.round()
	if err != nil {
		writeError(w, statusFor(err))
		return
	}

	q, err := a.quiz.Next(r.Context(), categoryID, previous)
	if err != nil {
		serverError(w, r, "pick quiz question failed", err)
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{Success: true, Question: q})
}
