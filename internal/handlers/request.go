package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

var (
	// errMalformedBody means the body is not the JSON object the endpoint expects.
	errMalformedBody = errors.New("malformed request body")
	// errMissingField means a required key is absent from the body.
	errMissingField = errors.New("missing required field")
)

// statusFor maps a request decoding or validation error to its status code.
func statusFor(err error) int {
	if errors.Is(err, errMissingField) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// decodeJSON reads the request body into v. An empty body decodes as an
// empty object so that required-field checks report it as a 422.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

// flexInt is an integer that also accepts a JSON string holding an
// integer. The web client posts select values as strings.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*n = flexInt(i)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*n = flexInt(i)
	return nil
}

type createQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Difficulty *flexInt `json:"difficulty"`
	Category   *flexInt `json:"category"`
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type quizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

type quizRequest struct {
	PreviousQuestions *[]flexInt    `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
}
