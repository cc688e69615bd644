package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

type ListFilter struct {
	Now time.Time
	// ExcludeVoterIP hides questions this IP has voted on. Empty disables it.
	ExcludeVoterIP string
	Limit          int
}

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetAll(ctx context.Context) ([]*domain.Question, error)
	ListPublished(ctx context.Context, filter ListFilter) ([]*domain.Question, error)
}

type CreateQuestionInput struct {
	Text        string
	ChoiceTexts []string
	CreatorIP   string
}

type QuestionService interface {
	// Create returns a nil question and a nil error when every choice text
	// was empty and nothing was stored.
	Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	ListVisible(ctx context.Context, requesterIP string) ([]*domain.Question, error)
	GetDetail(ctx context.Context, id string) (*domain.Question, error)
	GetResults(ctx context.Context, id string) (*domain.QuestionResults, error)
}
