package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

const uniqueViolation = "23505"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) HasVoted(ctx context.Context, questionID uuid.UUID, voterIP string) (bool, error) {
	query := `SELECT 1 FROM voters WHERE question_id = $1 AND voter_ip = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, questionID, voterIP).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) RecordVote(ctx context.Context, record *domain.VoterRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryVoter := `
		INSERT INTO voters (id, question_id, choice_id, voter_ip, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryVoter, record.ID, record.QuestionID, record.ChoiceID, record.VoterIP, record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save voter: %w", err)
	}

	queryChoice := `
		UPDATE choices SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`
	res, err := tx.ExecContext(ctx, queryChoice, record.ChoiceID, record.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to increment choice: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment choice: %w", err)
	}
	if affected == 0 {
		return domain.ErrInvalidChoice
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
