package questions

import (
	"encoding/json"
	"time"
)

// Question is a board entry. Answers is a JSON array kept verbatim; nothing in
// the current system appends to it, new questions start with the empty array.
type Question struct {
	ID         string
	Question   string
	ImageURL   string
	StorageKey string
	AskedBy    string
	Answers    json.RawMessage
	CreatedAt  time.Time
}

// EmptyAnswers is the initial answers payload for a fresh question.
var EmptyAnswers = json.RawMessage("[]")
