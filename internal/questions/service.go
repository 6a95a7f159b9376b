package questions

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyhub-backend/internal/shared/metrics"
	"studyhub-backend/internal/shared/storage/object"
	"studyhub-backend/internal/shared/telemetry"
)

// Service contains business logic for the question board.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// AskInput carries the fields of an ask request. Image is optional.
type AskInput struct {
	Question string
	AskedBy  string
	Image    io.Reader
}

// Ask records a question, storing the optional image first. An image upload
// failure aborts the whole ask; an insert failure triggers a compensating
// delete of the stored image.
func (s *Service) Ask(ctx context.Context, in AskInput) (Question, error) {
	text := strings.TrimSpace(in.Question)
	if text == "" {
		return Question{}, ErrInvalidInput
	}

	var imageURL, storageKey string
	if in.Image != nil {
		// Board images are normalized to a .jpg key regardless of source name.
		key := uuid.NewString() + ".jpg"
		if _, _, err := s.Store.Save(ctx, object.NamespaceQA, key, in.Image); err != nil {
			metrics.IncQuestionAskFailed()
			return Question{}, fmt.Errorf("upload question image: %w", err)
		}
		storageKey = key
		imageURL = s.Store.PublicURL(object.NamespaceQA, key)
	}

	q := Question{
		ID:         uuid.NewString(),
		Question:   text,
		ImageURL:   imageURL,
		StorageKey: storageKey,
		AskedBy:    in.AskedBy,
		Answers:    EmptyAnswers,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, q); err != nil {
		metrics.IncQuestionAskFailed()
		if storageKey != "" {
			if delErr := s.Store.Delete(ctx, object.NamespaceQA, storageKey); delErr != nil {
				telemetry.Error("questions.orphaned_object", map[string]any{
					"key": storageKey,
					"err": delErr.Error(),
				})
			}
		}
		return Question{}, fmt.Errorf("save question: %w", err)
	}

	metrics.IncQuestionAsked()
	return q, nil
}

// List returns all questions, newest first.
func (s *Service) List(ctx context.Context) ([]Question, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}
