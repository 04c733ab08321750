package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"trivia/internal/models"
)

type categoriesResponse struct {
	Success    bool               `json:"success"`
	Categories models.CategoryMap `json:"categories"`
}

// GetCategories returns every category as an id → type map.
func (a *API) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.Map(r.Context())
	if err != nil {
		serverError(w, r, "load categories failed", err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: categories})
}

// ListCategoryQuestions returns every question of the category in the
// path. An unknown category yields an empty list.
func (a *API) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		writeError(w, http.StatusNotFound)
		return
	}

	questions, err := a.questions.ListByCategory(r.Context(), categoryID)
	if err != nil {
		serverError(w, r, "list category questions failed", err)
		return
	}

	writeJSON(w, http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
