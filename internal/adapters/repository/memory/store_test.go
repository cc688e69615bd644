package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

func newQuestion(text string, pubDate time.Time, choices ...string) *domain.Question {
	q := &domain.Question{ID: uuid.New(), Text: text, PubDate: pubDate, CreatorIP: "127.0.0.1"}
	for _, c := range choices {
		q.Choices = append(q.Choices, domain.Choice{ID: uuid.New(), QuestionID: q.ID, Text: c})
	}
	return q
}

func TestStore_RecordVoteIsUniquePerIP(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	q := newQuestion("q", time.Now(), "a", "b")
	require.NoError(t, store.Save(ctx, q))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- store.RecordVote(ctx, &domain.VoterRecord{
				ID:         uuid.New(),
				QuestionID: q.ID,
				ChoiceID:   q.Choices[i%2].ID,
				VoterIP:    "10.0.0.1",
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	}
	assert.Equal(t, 1, succeeded)

	stored, err := store.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Choices[0].Votes+stored.Choices[1].Votes)
}

func TestStore_RecordVoteRejectsForeignChoice(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	q := newQuestion("q", time.Now(), "a")
	require.NoError(t, store.Save(ctx, q))

	err := store.RecordVote(ctx, &domain.VoterRecord{QuestionID: q.ID, ChoiceID: uuid.New(), VoterIP: "10.0.0.1"})
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	voted, err := store.HasVoted(ctx, q.ID, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, voted)
}

func TestStore_ListPublished(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Now()

	var ids []uuid.UUID
	for i := 1; i <= 7; i++ {
		q := newQuestion("past", now.Add(-time.Duration(i)*time.Hour), "a")
		require.NoError(t, store.Save(ctx, q))
		ids = append(ids, q.ID)
	}
	require.NoError(t, store.Save(ctx, newQuestion("future", now.Add(time.Hour), "a")))

	list, err := store.ListPublished(ctx, ports.ListFilter{Now: now, Limit: 5})
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, ids[0], list[0].ID)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].PubDate.After(list[i].PubDate))
	}

	q, err := store.GetByID(ctx, ids[0])
	require.NoError(t, err)
	require.NoError(t, store.RecordVote(ctx, &domain.VoterRecord{QuestionID: ids[0], ChoiceID: q.Choices[0].ID, VoterIP: "10.0.0.1"}))

	list, err = store.ListPublished(ctx, ports.ListFilter{Now: now, ExcludeVoterIP: "10.0.0.1", Limit: 5})
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, ids[1], list[0].ID)
}

func TestStore_RecountVotes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	q := newQuestion("q", time.Now(), "a", "b")
	require.NoError(t, store.Save(ctx, q))

	require.NoError(t, store.RecordVote(ctx, &domain.VoterRecord{QuestionID: q.ID, ChoiceID: q.Choices[0].ID, VoterIP: "1.1.1.1"}))
	require.NoError(t, store.RecordVote(ctx, &domain.VoterRecord{QuestionID: q.ID, ChoiceID: q.Choices[0].ID, VoterIP: "1.1.1.2"}))

	// Drift the counter and make sure the recount restores it.
	store.questions[q.ID].Choices[1].Votes = 9

	require.NoError(t, store.RecountVotes(ctx, q.ID))

	stored, err := store.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Choices[0].Votes)
	assert.Equal(t, int64(0), stored.Choices[1].Votes)
}

func TestStore_GetByIDNotFound(t *testing.T) {
	_, err := NewStore().GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
