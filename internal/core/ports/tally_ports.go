package ports

import (
	"context"

	"github.com/google/uuid"
)

type TallyRepository interface {
	RecountVotes(ctx context.Context, questionID uuid.UUID) error
}

type TallyService interface {
	RecountAllVotes(ctx context.Context) error
}
