package handlers

import (
	"fmt"

	"trivia/internal/models"
)

// newQuestion checks that every field is present and returns the question
// to persist. Values are stored as given.
func (req createQuestionRequest) newQuestion() (models.NewQuestion, error) {
	switch {
	case req.Question == nil:
		return models.NewQuestion{}, fmt.Errorf("%w: question", errMissingField)
	case req.Answer == nil:
		return models.NewQuestion{}, fmt.Errorf("%w: answer", errMissingField)
	case req.Difficulty == nil:
		return models.NewQuestion{}, fmt.Errorf("%w: difficulty", errMissingField)
	case req.Category == nil:
		return models.NewQuestion{}, fmt.Errorf("%w: category", errMissingField)
	}
	return models.NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: int(*req.Difficulty),
		Category:   int(*req.Category),
	}, nil
}

// term returns the search term, which may be empty.
func (req searchRequest) term() (string, error) {
	if req.SearchTerm == nil {
		return "", fmt.Errorf("%w: searchTerm", errMissingField)
	}
	return *req.SearchTerm, nil
}

// round returns the quiz category id and the ids already asked.
func (req quizRequest) round() (int, []int, error) {
	if req.PreviousQuestions == nil {
		return 0, nil, fmt.Errorf("%w: previous_questions", errMissingField)
	}
	if req.QuizCategory == nil {
		return 0, nil, fmt.Errorf("%w: quiz_category", errMissingField)
	}

	previous := make([]int, len(*req.PreviousQuestions))
	for i, id := range *req.PreviousQuestions {
		previous[i] = int(id)
	}
	return int(req.QuizCategory.ID), previous, nil
}
