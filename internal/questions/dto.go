package questions

import (
	"encoding/json"
	"time"
)

// QuestionResponse is the outward-facing representation of a question.
type QuestionResponse struct {
	ID        string          `json:"id"`
	Question  string          `json:"question"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	AskedBy   string          `json:"askedBy"`
	Answers   json.RawMessage `json:"answers"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toResponse(q Question) QuestionResponse {
	answers := q.Answers
	if len(answers) == 0 {
		answers = EmptyAnswers
	}
	return QuestionResponse{
		ID:        q.ID,
		Question:  q.Question,
		ImageURL:  q.ImageURL,
		AskedBy:   q.AskedBy,
		Answers:   answers,
		CreatedAt: q.CreatedAt,
	}
}
