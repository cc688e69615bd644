package ports

import (
	"context"

	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

type AuditLogger interface {
	QuestionCreated(ctx context.Context, ip string, question *domain.Question)
	VoteCast(ctx context.Context, ip string, question *domain.Question)
}
