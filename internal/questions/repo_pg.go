package questions

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new question.
func (r *PGRepo) Create(ctx context.Context, q Question) error {
	const query = `
INSERT INTO questions (
    id,
    question,
    image_url,
    storage_key,
    asked_by,
    answers,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	answers := q.Answers
	if len(answers) == 0 {
		answers = EmptyAnswers
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		q.ID,
		q.Question,
		q.ImageURL,
		q.StorageKey,
		q.AskedBy,
		[]byte(answers),
		q.CreatedAt,
	)
	return err
}

// List returns all questions ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Question, error) {
	const query = `
SELECT id, question, image_url, storage_key, asked_by, answers, created_at
FROM questions
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var answers []byte
		if err := rows.Scan(
			&q.ID,
			&q.Question,
			&q.ImageURL,
			&q.StorageKey,
			&q.AskedBy,
			&answers,
			&q.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(answers) == 0 {
			answers = EmptyAnswers
		}
		q.Answers = answers
		out = append(out, q)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
