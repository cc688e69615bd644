package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

type voteService struct {
	questionRepo ports.QuestionRepository
	voteRepo     ports.VoteRepository
	audit        ports.AuditLogger
	now          func() time.Time
}

func NewVoteService(questionRepo ports.QuestionRepository, voteRepo ports.VoteRepository, audit ports.AuditLogger) ports.VoteService {
	return &voteService{
		questionRepo: questionRepo,
		voteRepo:     voteRepo,
		audit:        audit,
		now:          time.Now,
	}
}

// Vote returns the question whenever it exists so callers can redisplay it
// alongside a refusal.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	if input.VoterIP == "" {
		return question, domain.ErrIPNotTracked
	}

	hasVoted, err := s.voteRepo.HasVoted(ctx, input.QuestionID, input.VoterIP)
	if err != nil {
		return question, err
	}
	if hasVoted {
		return question, domain.ErrAlreadyVoted
	}

	if input.ChoiceID == uuid.Nil {
		return question, domain.ErrNoChoiceSelected
	}
	choice, ok := question.Choice(input.ChoiceID)
	if !ok {
		return question, domain.ErrInvalidChoice
	}

	record := &domain.VoterRecord{
		ID:         uuid.New(),
		QuestionID: question.ID,
		ChoiceID:   choice.ID,
		VoterIP:    input.VoterIP,
		CreatedAt:  s.now(),
	}

	// The store rejects a concurrent duplicate that got past HasVoted.
	if err := s.voteRepo.RecordVote(ctx, record); err != nil {
		return question, err
	}
	choice.Votes++

	s.audit.VoteCast(ctx, input.VoterIP, question)

	return question, nil
}
