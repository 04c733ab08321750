// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory fakes of the handler dependencies and
// request helpers shared by the handler tests.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"trivia/internal/apierr"
	"trivia/internal/models"
)

var errDBDown = errors.New("db down")

// memQuestions is an in-memory QuestionStore ordered by id.
type memQuestions struct {
	mu        sync.Mutex
	questions []models.Question
	nextID    int
	err       error
}

func newMemQuestions(qs ...models.Question) *memQuestions {
	m := &memQuestions{questions: qs, nextID: 1}
	for _, q := range qs {
		if q.ID >= m.nextID {
			m.nextID = q.ID + 1
		}
	}
	return m
}

func (m *memQuestions) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.questions), nil
}

func (m *memQuestions) ListPage(_ context.Context, limit, offset int) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Question{}
	for i := offset; i < len(m.questions) && i < offset+limit; i++ {
		out = append(out, m.questions[i])
	}
	return out, nil
}

func (m *memQuestions) Create(_ context.Context, nq models.NewQuestion) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	q := models.Question{ID: m.nextID, Question: nq.Question, Answer: nq.Answer, Category: nq.Category, Difficulty: nq.Difficulty}
	m.nextID++
	m.questions = append(m.questions, q)
	return &q, nil
}

func (m *memQuestions) Delete(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	i := slices.IndexFunc(m.questions, func(q models.Question) bool { return q.ID == id })
	if i < 0 {
		return false, nil
	}
	m.questions = slices.Delete(m.questions, i, i+1)
	return true, nil
}

func (m *memQuestions) Search(_ context.Context, term string) ([]models.Question, error) {
	return m.filter(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
	})
}

func (m *memQuestions) ListByCategory(_ context.Context, categoryID int) ([]models.Question, error) {
	return m.filter(func(q models.Question) bool { return q.Category == categoryID })
}

func (m *memQuestions) filter(keep func(models.Question) bool) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Question{}
	for _, q := range m.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// staticCategories is a CategorySource returning a fixed map.
type staticCategories struct {
	m   models.CategoryMap
	err error
}

func (s staticCategories) Map(context.Context) (models.CategoryMap, error) {
	return s.m, s.err
}

// stubPicker records the round it was asked for and returns a fixed result.
type stubPicker struct {
	question   *models.Question
	err        error
	categoryID int
	previous   []int
	called     bool
}

func (p *stubPicker) Next(_ context.Context, categoryID int, previous []int) (*models.Question, error) {
	p.called = true
	p.categoryID = categoryID
	p.previous = previous
	return p.question, p.err
}

// fixtureQuestions returns n questions with ids 1..n spread over categories 1-3.
func fixtureQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			ID:         i + 1,
			Question:   "Question " + string(rune('A'+i)),
			Answer:     "Answer",
			Category:   i%3 + 1,
			Difficulty: i%5 + 1,
		}
	}
	return qs
}

func testCategories() staticCategories {
	return staticCategories{m: models.CategoryMap{1: "Science", 2: "Art", 3: "Geography"}}
}

// do sends a request to h, optionally with chi URL params set as they
// would be by the router.
func do(t *testing.T, h http.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

// decode unmarshals the response body into v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

// requireError checks rr carries the fixed error body for status.
func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())

	var body apierr.Body
	decode(t, rr, &body)
	require.Equal(t, apierr.New(status), body)
}
