package questions

import "context"

// Repo persists questions.
type Repo interface {
	Create(ctx context.Context, q Question) error
	// List returns all questions, newest first.
	List(ctx context.Context) ([]Question, error)
}
