// Package memory is an in-process store for local development and tests. It
// enforces the same one-vote-per-IP invariant as the PostgreSQL store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

type voterKey struct {
	questionID uuid.UUID
	ip         string
}

type Store struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]*domain.Question
	order     []uuid.UUID
	voters    map[voterKey]domain.VoterRecord
}

var (
	_ ports.QuestionRepository = (*Store)(nil)
	_ ports.VoteRepository     = (*Store)(nil)
	_ ports.TallyRepository    = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		questions: make(map[uuid.UUID]*domain.Question),
		voters:    make(map[voterKey]domain.VoterRecord),
	}
}

func (s *Store) Save(ctx context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions[question.ID] = cloneQuestion(question)
	s.order = append(s.order, question.ID)
	return nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return cloneQuestion(question), nil
}

func (s *Store) GetAll(ctx context.Context) ([]*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Question, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, cloneQuestion(s.questions[id]))
	}
	return res, nil
}

func (s *Store) ListPublished(ctx context.Context, filter ports.ListFilter) ([]*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Question
	for _, id := range s.order {
		question := s.questions[id]
		if !question.IsPublished(filter.Now) {
			continue
		}
		if filter.ExcludeVoterIP != "" {
			if _, voted := s.voters[voterKey{questionID: id, ip: filter.ExcludeVoterIP}]; voted {
				continue
			}
		}
		listed := *question
		listed.Choices = nil
		res = append(res, &listed)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].PubDate.After(res[j].PubDate)
	})

	if filter.Limit > 0 && len(res) > filter.Limit {
		res = res[:filter.Limit]
	}
	return res, nil
}

func (s *Store) HasVoted(ctx context.Context, questionID uuid.UUID, voterIP string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.voters[voterKey{questionID: questionID, ip: voterIP}]
	return ok, nil
}

func (s *Store) RecordVote(ctx context.Context, record *domain.VoterRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.questions[record.QuestionID]
	if !ok {
		return domain.ErrQuestionNotFound
	}

	key := voterKey{questionID: record.QuestionID, ip: record.VoterIP}
	if _, voted := s.voters[key]; voted {
		return domain.ErrAlreadyVoted
	}

	choice, ok := question.Choice(record.ChoiceID)
	if !ok {
		return domain.ErrInvalidChoice
	}

	choice.Votes++
	s.voters[key] = *record
	return nil
}

func (s *Store) RecountVotes(ctx context.Context, questionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.questions[questionID]
	if !ok {
		return domain.ErrQuestionNotFound
	}

	counts := make(map[uuid.UUID]int64)
	for key, record := range s.voters {
		if key.questionID == questionID {
			counts[record.ChoiceID]++
		}
	}
	for i := range question.Choices {
		question.Choices[i].Votes = counts[question.Choices[i].ID]
	}
	return nil
}

func cloneQuestion(q *domain.Question) *domain.Question {
	c := *q
	if q.Choices != nil {
		c.Choices = make([]domain.Choice, len(q.Choices))
		copy(c.Choices, q.Choices)
	}
	return &c
}
