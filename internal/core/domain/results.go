package domain

type ChoiceResult struct {
	Choice
	Percentage float64 `json:"percentage"`
}

type QuestionResults struct {
	Question   *Question      `json:"question"`
	TotalVotes int64          `json:"total_votes"`
	Choices    []ChoiceResult `json:"choices"`
}

func NewQuestionResults(q *Question) *QuestionResults {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}

	results := make([]ChoiceResult, 0, len(q.Choices))
	for _, c := range q.Choices {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(c.Votes) / float64(total)) * 100
		}
		results = append(results, ChoiceResult{Choice: c, Percentage: percentage})
	}

	return &QuestionResults{
		Question:   q,
		TotalVotes: total,
		Choices:    results,
	}
}
