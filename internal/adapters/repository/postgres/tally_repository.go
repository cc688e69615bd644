package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{
		db: db,
	}
}

func (r *tallyRepository) RecountVotes(ctx context.Context, questionID uuid.UUID) error {
	query := `
		UPDATE choices c
		SET votes = (SELECT COUNT(*) FROM voters v WHERE v.choice_id = c.id)
		WHERE c.question_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, questionID)
	if err != nil {
		return fmt.Errorf("failed to recount votes for question %s: %w", questionID, err)
	}

	return nil
}
