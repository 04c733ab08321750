// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Question is a single trivia question. Category holds the id of a Category
// but is not enforced as a foreign key.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields needed to insert a question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionFilter narrows the candidate set for a quiz round.
// CategoryID 0 means every category.
type QuestionFilter struct {
	CategoryID int
	ExcludeIDs []int
}

// AllCategories is the quiz category id meaning "no category filter".
const AllCategories = 0
