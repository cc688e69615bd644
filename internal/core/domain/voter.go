package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoterRecord is the proof that VoterIP has voted on QuestionID. There is at
// most one per (QuestionID, VoterIP).
type VoterRecord struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	ChoiceID   uuid.UUID `json:"choice_id"`
	VoterIP    string    `json:"voter_ip"`
	CreatedAt  time.Time `json:"created_at"`
}
