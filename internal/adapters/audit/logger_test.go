package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

func TestLoggerWritesJSONRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	question := &domain.Question{ID: uuid.New(), Text: "What's up?"}

	logger.QuestionCreated(context.Background(), "127.0.0.1", question)
	logger.VoteCast(context.Background(), "10.0.0.2", question)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var created map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &created))
	assert.Equal(t, "question created", created["event"])
	assert.Equal(t, "127.0.0.1", created["ip"])
	assert.Equal(t, question.ID.String(), created["question_id"])
	assert.Equal(t, "What's up?", created["question"])
	assert.Equal(t, "audit", created["component"])

	var cast map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &cast))
	assert.Equal(t, "vote cast", cast["event"])
	assert.Equal(t, "10.0.0.2", cast["ip"])
}

func TestTee(t *testing.T) {
	var first, second bytes.Buffer
	logger := Tee(NewLogger(&first), Nop(), NewLogger(&second))

	logger.VoteCast(context.Background(), "1.2.3.4", &domain.Question{ID: uuid.New(), Text: "q"})

	assert.Contains(t, first.String(), `"event":"vote cast"`)
	assert.Contains(t, second.String(), `"event":"vote cast"`)
}
