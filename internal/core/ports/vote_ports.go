package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

type VoteRepository interface {
	HasVoted(ctx context.Context, questionID uuid.UUID, voterIP string) (bool, error)
	// RecordVote stores the voter record and increments the choice counter
	// atomically. It returns domain.ErrAlreadyVoted when the IP already has a
	// record for the question.
	RecordVote(ctx context.Context, record *domain.VoterRecord) error
}

type VoteInput struct {
	QuestionID uuid.UUID
	ChoiceID   uuid.UUID
	VoterIP    string
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Question, error)
}
