package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

const latestQuestionsLimit = 5

type questionService struct {
	repo  ports.QuestionRepository
	audit ports.AuditLogger
	now   func() time.Time
}

func NewQuestionService(repo ports.QuestionRepository, audit ports.AuditLogger) ports.QuestionService {
	return &questionService{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (s *questionService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	if len(input.ChoiceTexts) == 0 {
		return nil, domain.ErrChoiceTextRequired
	}
	if len(input.ChoiceTexts) > domain.MaxChoices {
		return nil, domain.ErrTooManyChoices
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domain.ErrQuestionTextRequired
	}
	if utf8.RuneCountInString(text) > domain.MaxTextLength {
		return nil, domain.ErrQuestionTextTooLong
	}
	if input.CreatorIP == "" {
		return nil, domain.ErrIPNotTracked
	}

	questionID := uuid.New()
	question := &domain.Question{
		ID:        questionID,
		Text:      text,
		PubDate:   s.now(),
		CreatorIP: input.CreatorIP,
	}

	for _, choiceText := range input.ChoiceTexts {
		choiceText = strings.TrimSpace(choiceText)
		if choiceText == "" {
			continue
		}
		if utf8.RuneCountInString(choiceText) > domain.MaxTextLength {
			return nil, domain.ErrChoiceTextTooLong
		}
		question.Choices = append(question.Choices, domain.Choice{
			ID:         uuid.New(),
			QuestionID: questionID,
			Text:       choiceText,
		})
	}

	// Without a single usable choice the question is discarded.
	if len(question.Choices) == 0 {
		return nil, nil
	}

	if err := s.repo.Save(ctx, question); err != nil {
		return nil, err
	}

	s.audit.QuestionCreated(ctx, input.CreatorIP, question)

	return question, nil
}

func (s *questionService) ListVisible(ctx context.Context, requesterIP string) ([]*domain.Question, error) {
	return s.repo.ListPublished(ctx, ports.ListFilter{
		Now:            s.now(),
		ExcludeVoterIP: requesterIP,
		Limit:          latestQuestionsLimit,
	})
}

func (s *questionService) GetDetail(ctx context.Context, id string) (*domain.Question, error) {
	question, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !question.IsPublished(s.now()) {
		return nil, domain.ErrQuestionNotFound
	}

	return question, nil
}

func (s *questionService) GetResults(ctx context.Context, id string) (*domain.QuestionResults, error) {
	question, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return domain.NewQuestionResults(question), nil
}

func (s *questionService) get(ctx context.Context, id string) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidQuestionID
	}

	return s.repo.GetByID(ctx, questionID)
}
