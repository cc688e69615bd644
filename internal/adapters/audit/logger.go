// Package audit records question creation and vote events.
package audit

import (
	"context"
	"io"
	"log/slog"

	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

type Logger struct {
	logger *slog.Logger
}

var _ ports.AuditLogger = (*Logger)(nil)

// NewLogger writes one JSON record per event to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		logger: slog.New(slog.NewJSONHandler(w, nil)).With("component", "audit"),
	}
}

func (l *Logger) QuestionCreated(ctx context.Context, ip string, question *domain.Question) {
	l.log(ctx, "question created", ip, question)
}

func (l *Logger) VoteCast(ctx context.Context, ip string, question *domain.Question) {
	l.log(ctx, "vote cast", ip, question)
}

func (l *Logger) log(ctx context.Context, event, ip string, question *domain.Question) {
	l.logger.InfoContext(ctx, event,
		slog.String("event", event),
		slog.String("ip", ip),
		slog.String("question_id", question.ID.String()),
		slog.String("question", question.Text),
	)
}

type multi []ports.AuditLogger

// Tee fans every event out to each of the given loggers in order.
func Tee(loggers ...ports.AuditLogger) ports.AuditLogger {
	return multi(loggers)
}

func (m multi) QuestionCreated(ctx context.Context, ip string, question *domain.Question) {
	for _, l := range m {
		l.QuestionCreated(ctx, ip, question)
	}
}

func (m multi) VoteCast(ctx context.Context, ip string, question *domain.Question) {
	for _, l := range m {
		l.VoteCast(ctx, ip, question)
	}
}

type nop struct{}

// Nop discards every event.
func Nop() ports.AuditLogger { return nop{} }

func (nop) QuestionCreated(context.Context, string, *domain.Question) {}
func (nop) VoteCast(context.Context, string, *domain.Question) {}
