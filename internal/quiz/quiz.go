// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package quiz selects the next question of a quiz round.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"trivia/internal/models"
)

// QuestionSource returns the questions eligible for a round.
type QuestionSource interface {
	Candidates(ctx context.Context, f models.QuestionFilter) ([]models.Question, error)
}

// Picker chooses a question uniformly at random among the candidates that
// match the round's category and have not been asked yet.
type Picker struct {
	source QuestionSource
	intn   func(n int) int
}

// NewPicker creates a Picker drawing from source.
func NewPicker(source QuestionSource) *Picker {
	return &Picker{source: source, intn: rand.IntN}
}

// Next returns a random question of categoryID (models.AllCategories for
// any) whose id is not in previous. It returns nil when the round has run
// out of questions.
func (p *Picker) Next(ctx context.Context, categoryID int, previous []int) (*models.Question, error) {
	candidates, err := p.source.Candidates(ctx, models.QuestionFilter{
		CategoryID: categoryID,
		ExcludeIDs: previous,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	q := candidates[p.intn(len(candidates))]
	return &q, nil
}
