// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"trivia/internal/middleware"
	"trivia/internal/models"
)

// questionsResponse is the body of the search and category listings.
type questionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

// questionPageResponse is the body of the paginated listing.
type questionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []models.Question  `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      models.CategoryMap `json:"categories"`
	CurrentCategory int                `json:"current_category"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// pageParam reads ?page. A missing or non-integer value means page 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// ListQuestions returns one page of questions ordered by id, the total
// question count and the category map.
func (a *API) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := pageParam(r)
	if page < 1 {
		writeError(w, http.StatusBadRequest)
		return
	}

	total, err := a.questions.Count(ctx)
	if err != nil {
		serverError(w, r, "count questions failed", err)
		return
	}

	questions := []models.Question{}
	if page-1 <= total/QuestionsPerPage {
		questions, err = a.questions.ListPage(ctx, QuestionsPerPage, (page-1)*QuestionsPerPage)
		if err != nil {
			serverError(w, r, "list questions failed", err)
			return
		}
	}

	categories, err := a.categories.Map(ctx)
	if err != nil {
		serverError(w, r, "load categories failed", err)
		return
	}

	writeJSON(w, http.StatusOK, questionPageResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: models.AllCategories,
	})
}

// CreateQuestion stores a new question. All four fields are required.
func (a *API) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, statusFor(err))
		return
	}

	nq, err := req.newQuestion()
	if err != nil {
		writeError(w, statusFor(err))
		return
	}

	q, err := a.questions.Create(r.Context(), nq)
	if err != nil {
		serverError(w, r, "create question failed", err)
		return
	}

	slog.Info("question created", "id", q.ID, "category", q.Category, "request_id", middleware.RequestID(r.Context()))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// DeleteQuestion removes the question in the path.
func (a *API) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		writeError(w, http.StatusNotFound)
		return
	}

	deleted, err := a.questions.Delete(r.Context(), id)
	if err != nil {
		serverError(w, r, "delete question failed", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound)
		return
	}

	slog.Info("question deleted", "id", id, "request_id", middleware.RequestID(r.Context()))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// SearchQuestions returns every question whose text contains searchTerm,
// ignoring case.
func (a *API) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, statusFor(err))
		return
	}

	term, err := req.term()
	if err != nil {
		writeError(w, statusFor(err))
		return
	}

	questions, err := a.questions.Search(r.Context(), term)
	if err != nil {
		serverError(w, r, "search questions failed", err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: models.AllCategories,
	})
}
