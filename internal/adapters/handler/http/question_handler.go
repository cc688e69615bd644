package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
)

const (
	msgQuestionSaved    = "Question successfully saved"
	msgQuestionNotSaved = "Question not saved"
)

// Matches the prefixed field names of a formset, e.g. form-3-choice_text.
var formsetChoiceField = regexp.MustCompile(`^form-(\d+)-choice_text$`)

type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

type createQuestionRequest struct {
	QuestionText string   `json:"question_text"`
	ChoiceTexts  []string `json:"choice_text"`
}

type createQuestionResponse struct {
	Question *domain.Question `json:"question"`
	Msg      string           `json:"msg"`
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListVisible(r.Context(), clientIP(r))
	if err != nil {
		internalError(w, err)
		return
	}
	if questions == nil {
		questions = []*domain.Question{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"latest_question_list": questions})
}

func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.GetDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.GetResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *QuestionHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"max_choices": domain.MaxChoices,
		"msg":         "",
	})
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.service.Create(r.Context(), ports.CreateQuestionInput{
		Text:        req.QuestionText,
		ChoiceTexts: req.ChoiceTexts,
		CreatorIP:   clientIP(r),
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"msg": validationErr.Message})
			return
		}
		internalError(w, err)
		return
	}

	if question == nil {
		writeJSON(w, http.StatusOK, createQuestionResponse{Msg: msgQuestionNotSaved})
		return
	}

	writeJSON(w, http.StatusCreated, createQuestionResponse{Question: question, Msg: msgQuestionSaved})
}

// decodeCreateRequest accepts a JSON body or a form with repeated
// choice_text fields and/or formset style form-N-choice_text fields.
func decodeCreateRequest(r *http.Request) (*createQuestionRequest, error) {
	var req createQuestionRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	req.QuestionText = r.PostForm.Get("question_text")
	req.ChoiceTexts = append(req.ChoiceTexts, r.PostForm["choice_text"]...)

	type indexed struct {
		index int
		text  string
	}
	var formset []indexed
	for key, values := range r.PostForm {
		m := formsetChoiceField.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		formset = append(formset, indexed{index: idx, text: values[0]})
	}
	sort.Slice(formset, func(i, j int) bool { return formset[i].index < formset[j].index })
	for _, f := range formset {
		req.ChoiceTexts = append(req.ChoiceTexts, f.text)
	}

	return &req, nil
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrQuestionNotFound) || errors.Is(err, domain.ErrInvalidQuestionID) {
		writeError(w, http.StatusNotFound, domain.ErrQuestionNotFound.Error())
		return
	}
	internalError(w, err)
}

func internalError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
