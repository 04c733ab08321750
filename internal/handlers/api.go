// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the trivia API.
// Handlers receive their dependencies through the API struct and answer
// every request with JSON.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"trivia/internal/apierr"
	"trivia/internal/middleware"
	"trivia/internal/models"
)

// QuestionsPerPage is the page size of GET /api/questions.
const QuestionsPerPage = 10

// QuestionStore is the question persistence the handlers depend on.
type QuestionStore interface {
	Count(ctx context.Context) (int, error)
	ListPage(ctx context.Context, limit, offset int) ([]models.Question, error)
	Create(ctx context.Context, q models.NewQuestion) (*models.Question, error)
	Delete(ctx context.Context, id int) (bool, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
}

// CategorySource returns the category id → type map.
type CategorySource interface {
	Map(ctx context.Context) (models.CategoryMap, error)
}

// QuizPicker selects the next quiz question. A nil question means the
// round has no questions left.
type QuizPicker interface {
	Next(ctx context.Context, categoryID int, previous []int) (*models.Question, error)
}

// API groups the /api handlers and their dependencies.
type API struct {
	questions  QuestionStore
	categories CategorySource
	quiz       QuizPicker
}

// NewAPI creates a new API handler group.
func NewAPI(questions QuestionStore, categories CategorySource, quiz QuizPicker) *API {
	return &API{
		questions:  questions,
		categories: categories,
		quiz:       quiz,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the fixed error body for status.
func writeError(w http.ResponseWriter, status int) {
	apierr.Write(w, status)
}

// serverError logs err with the request id and answers 500.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "request_id", middleware.RequestID(r.Context()))
	writeError(w, http.StatusInternalServerError)
}
