package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

type tallyService struct {
	questionRepo ports.QuestionRepository
	tallyRepo    ports.TallyRepository
}

func NewTallyService(questionRepo ports.QuestionRepository, tallyRepo ports.TallyRepository) ports.TallyService {
	return &tallyService{
		questionRepo: questionRepo,
		tallyRepo:    tallyRepo,
	}
}

// RecountAllVotes rewrites every choice counter from the voter records.
func (s *tallyService) RecountAllVotes(ctx context.Context) error {
	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all questions: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(questions))

	for _, question := range questions {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if err := s.tallyRepo.RecountVotes(ctx, id); err != nil {
				errChan <- fmt.Errorf("failed to recount question %s: %w", id, err)
			}
		}(question.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
