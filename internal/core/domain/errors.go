package domain

import "errors"

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidQuestionID = errors.New("invalid question id")
	ErrAlreadyVoted      = errors.New("you have already voted for this question")
	ErrValidation        = errors.New("validation failed")
)

// Validation failures surfaced to the client with a human readable message.
var (
	ErrNoChoiceSelected     = NewValidationError("You didn't select a choice.")
	ErrInvalidChoice        = NewValidationError("You didn't select a choice.")
	ErrIPNotTracked         = NewValidationError("IP is not tracked")
	ErrChoiceTextRequired   = NewValidationError("At least one choice_text required.")
	ErrTooManyChoices       = NewValidationError("Max ten choice_text can be added.")
	ErrQuestionTextRequired = NewValidationError("question_text is required.")
	ErrQuestionTextTooLong  = NewValidationError("question_text must be at most 200 characters.")
	ErrChoiceTextTooLong    = NewValidationError("choice_text must be at most 200 characters.")
)

type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
