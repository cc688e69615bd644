package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

const msgAlreadyVoted = "You have already voted for this question."

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteErrorResponse struct {
	Question     *domain.Question `json:"question"`
	ErrorMessage string           `json:"error_message"`
}

func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionIDStr := chi.URLParam(r, "id")
	questionID, err := uuid.Parse(questionIDStr)
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrQuestionNotFound.Error())
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	// A missing or malformed choice is reported as no choice selected.
	choiceID, err := uuid.Parse(r.PostForm.Get("choice"))
	if err != nil {
		choiceID = uuid.Nil
	}

	input := ports.VoteInput{
		QuestionID: questionID,
		ChoiceID:   choiceID,
		VoterIP:    clientIP(r),
	}

	question, err := h.service.Vote(r.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAlreadyVoted):
			writeJSON(w, http.StatusOK, voteErrorResponse{Question: question, ErrorMessage: msgAlreadyVoted})
		case errors.As(err, &validationErr):
			writeJSON(w, http.StatusUnprocessableEntity, voteErrorResponse{Question: question, ErrorMessage: validationErr.Message})
		default:
			internalError(w, err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/polls/%s/results", question.ID), http.StatusSeeOther)
}
