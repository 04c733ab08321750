package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"trivia/internal/models"
)

// SeedCategories are the categories inserted by Seed, in id order.
var SeedCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// SeedQuestions are the questions inserted by Seed, in id order.
var SeedQuestions = []models.NewQuestion{
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
	{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
	{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
	{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
	{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
	{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
	{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
	{Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
}

// Seed populates an empty database with the trivia fixture. It is a no-op
// when any category already exists. Returns true if rows were inserted.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return false, fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, name := range SeedCategories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (type) VALUES ($1)`, name); err != nil {
			return false, fmt.Errorf("seed insert category %q: %w", name, err)
		}
	}

	for _, q := range SeedQuestions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO questions (question, answer, category, difficulty)
			VALUES ($1, $2, $3, $4)
		`, q.Question, q.Answer, q.Category, q.Difficulty)
		if err != nil {
			return false, fmt.Errorf("seed insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"categories", len(SeedCategories),
		"questions", len(SeedQuestions),
	)
	return true, nil
}

// Reset empties both tables and restarts their id sequences. Used by
// integration tests that need the exact fixture ids.
func Reset(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `TRUNCATE questions, categories RESTART IDENTITY`); err != nil {
		return fmt.Errorf("reset tables: %w", err)
	}
	return nil
}
