// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"trivia/internal/models"
)

// QuestionStore manages trivia questions in the database.
type QuestionStore struct {
	db *sql.DB
}

// NewQuestionStore returns a new QuestionStore.
func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

const questionColumns = `id, question, answer, category, difficulty`

// scanQuestion scans a row into a Question struct.
func scanQuestion(scanner interface{ Scan(...any) error }) (*models.Question, error) {
	var q models.Question
	if err := scanner.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
		return nil, err
	}
	return &q, nil
}

// queryQuestions runs a SELECT returning question rows and collects them.
// The result is never nil so it encodes as an empty JSON array.
func (s *QuestionStore) queryQuestions(ctx context.Context, op, query string, args ...any) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		items = append(items, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Count returns the total number of questions.
func (s *QuestionStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// ListPage returns up to limit questions ordered by id, skipping offset rows.
func (s *QuestionStore) ListPage(ctx context.Context, limit, offset int) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions",
		`SELECT `+questionColumns+` FROM questions ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
}

// FindByID retrieves a question by ID. Returns nil if not found.
func (s *QuestionStore) FindByID(ctx context.Context, id int) (*models.Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1::bigint`, id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find question by id: %w", err)
	}
	return q, nil
}

// Create inserts a new question and returns it with its assigned id.
func (s *QuestionStore) Create(ctx context.Context, q models.NewQuestion) (*models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING `+questionColumns,
		q.Question, q.Answer, q.Category, q.Difficulty,
	)
	created, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return created, nil
}

// Delete removes a question by ID. Returns false if no row matched.
func (s *QuestionStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1::bigint`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete question rows affected: %w", err)
	}
	return n > 0, nil
}

// Search returns every question whose text contains term, ignoring case.
// LIKE wildcards in term are matched literally.
func (s *QuestionStore) Search(ctx context.Context, term string) ([]models.Question, error) {
	return s.queryQuestions(ctx, "search questions",
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE '%' || $1 || '%'
		 ORDER BY id`,
		escapeLike(term),
	)
}

// ListByCategory returns every question in the given category.
func (s *QuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	return s.queryQuestions(ctx, "list questions by category",
		`SELECT `+questionColumns+` FROM questions WHERE category = $1::bigint ORDER BY id`,
		categoryID,
	)
}

// Candidates returns the questions eligible for the next quiz round: those in
// f.CategoryID (any category when it is models.AllCategories) whose id is
// not in f.ExcludeIDs.
func (s *QuestionStore) Candidates(ctx context.Context, f models.QuestionFilter) ([]models.Question, error) {
	exclude := make([]int64, 0, len(f.ExcludeIDs))
	for _, id := range f.ExcludeIDs {
		exclude = append(exclude, int64(id))
	}

	return s.queryQuestions(ctx, "list quiz candidates",
		`SELECT `+questionColumns+` FROM questions
		 WHERE ($1::bigint = 0 OR category = $1::bigint)
		   AND NOT (id = ANY($2::bigint[]))
		 ORDER BY id`,
		f.CategoryID, exclude,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes the LIKE metacharacters so term matches as a plain substring.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
