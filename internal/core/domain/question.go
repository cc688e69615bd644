package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxChoices    = 10
	MaxTextLength = 200
)

type Question struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"question_text"`
	PubDate   time.Time `json:"pub_date"`
	CreatorIP string    `json:"-"`
	Choices   []Choice  `json:"choices,omitempty"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"choice_text"`
	Votes      int64     `json:"votes"`
}

// IsPublished reports whether the question is visible at now.
func (q *Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// PublishedRecently reports whether the question was published within the
// day before now. Questions scheduled in the future are not recent.
func (q *Question) PublishedRecently(now time.Time) bool {
	return q.IsPublished(now) && !q.PubDate.Before(now.Add(-24*time.Hour))
}

func (q *Question) Choice(id uuid.UUID) (*Choice, bool) {
	for i := range q.Choices {
		if q.Choices[i].ID == id {
			return &q.Choices[i], true
		}
	}
	return nil, false
}

func (q *Question) String() string {
	return q.Text
}
