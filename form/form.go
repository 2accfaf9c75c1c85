// Package form collects a respondent's answers to a survey and enforces the
// completion rules at submit time. A Form owns the answer map; the survey it
// renders is never mutated.
package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/lauracmd12/Front-Davivienda/model"
)

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

var (
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("response already submitted")
	ErrUnknownQuestion  = errors.New("unknown question")
)

// MissingRequiredError reports the required questions left unanswered.
type MissingRequiredError struct {
	Questions []model.Question
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("%d required questions unanswered", len(e.Questions))
}

// Submitter sends a finished response to the survey service.
type Submitter interface {
	SubmitResponse(ctx context.Context, surveyID string, resp model.SurveyResponse) error
}

type Form struct {
	survey    model.Survey
	questions []model.Question // sorted by order ascending
	answers   map[string]model.AnswerValue
	state     State
}

func New(survey model.Survey) *Form {
	questions := make([]model.Question, len(survey.Questions))
	copy(questions, survey.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
	return &Form{
		survey:    survey,
		questions: questions,
		answers:   map[string]model.AnswerValue{},
	}
}

func (f *Form) Survey() model.Survey {
	return f.survey
}

// Questions returns the questions in display order.
func (f *Form) Questions() []model.Question {
	return f.questions
}

func (f *Form) State() State {
	return f.state
}

func (f *Form) Answer(questionID string) (model.AnswerValue, bool) {
	v, ok := f.answers[questionID]
	return v, ok
}

// SetAnswer overwrites any prior value for the question. The value must fit
// the question type: a list for checkbox, "1".."5" for rating, one of the
// listed options for radio and select, free text otherwise.
func (f *Form) SetAnswer(questionID string, value model.AnswerValue) error {
	q, ok := f.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}

	switch q.Type {
	case model.TypeText, model.TypeTextarea:
		if value.IsList() {
			return fmt.Errorf("question %q takes a single text value", q.Title)
		}

	case model.TypeRadio, model.TypeSelect:
		if value.IsList() {
			return fmt.Errorf("question %q takes a single option", q.Title)
		}
		if value.Text() != "" && !contains(q.Options, value.Text()) {
			return fmt.Errorf("%q is not an option of question %q", value.Text(), q.Title)
		}

	case model.TypeCheckbox:
		if !value.IsList() {
			return fmt.Errorf("question %q takes a list of options", q.Title)
		}
		for _, item := range value.List() {
			if !contains(q.Options, item) {
				return fmt.Errorf("%q is not an option of question %q", item, q.Title)
			}
		}

	case model.TypeRating:
		if value.IsList() {
			return fmt.Errorf("question %q takes a single rating", q.Title)
		}
		if value.Text() != "" {
			n, err := strconv.Atoi(value.Text())
			if err != nil || n < 1 || n > 5 {
				return fmt.Errorf("rating for %q must be between 1 and 5", q.Title)
			}
		}

	default:
		return fmt.Errorf("unsupported question type %q", q.Type)
	}

	f.answers[questionID] = value
	return nil
}

// ToggleOption flips one checkbox option: absent options are appended, present
// ones removed. The selection never holds duplicates.
func (f *Form) ToggleOption(questionID, option string) error {
	q, ok := f.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if q.Type != model.TypeCheckbox {
		return fmt.Errorf("question %q is not a checkbox question", q.Title)
	}
	if !contains(q.Options, option) {
		return fmt.Errorf("%q is not an option of question %q", option, q.Title)
	}

	current := f.answers[questionID].List()
	var next []string
	found := false
	for _, item := range current {
		if item == option {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, option)
	}
	f.answers[questionID] = model.ListValue(next)
	return nil
}

// MissingRequired returns the required questions with no answer, or with an
// empty checkbox selection, in display order. A non-empty result blocks
// submission.
func (f *Form) MissingRequired() []model.Question {
	var missing []model.Question
	for _, q := range f.questions {
		if !q.Required {
			continue
		}
		v, ok := f.answers[q.ID]
		if !ok || v.Empty() {
			missing = append(missing, q)
		}
	}
	return missing
}

// ResponsePayload flattens the answers to the wire shape. Unanswered
// questions produce no entry.
func (f *Form) ResponsePayload(respondentEmail string) model.SurveyResponse {
	resp := model.SurveyResponse{
		SurveyID:        f.survey.ID,
		RespondentEmail: respondentEmail,
	}
	for _, q := range f.questions {
		if v, ok := f.answers[q.ID]; ok {
			resp.Answers = append(resp.Answers, model.Answer{QuestionID: q.ID, Value: v})
		}
	}
	return resp
}

// Submit validates required completeness, sends the response and moves the
// form to its terminal submitted state. Re-entry while a submission is in
// flight, or after one succeeded, is rejected; a failed send leaves the form
// editable with its answers intact.
func (f *Form) Submit(ctx context.Context, svc Submitter, respondentEmail string) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateSubmitted:
		return ErrAlreadySubmitted
	}

	if missing := f.MissingRequired(); len(missing) > 0 {
		return &MissingRequiredError{Questions: missing}
	}

	f.state = StateSubmitting
	err := svc.SubmitResponse(ctx, f.survey.ID, f.ResponsePayload(respondentEmail))
	if err != nil {
		f.state = StateEditing
		return err
	}
	f.state = StateSubmitted
	return nil
}

func (f *Form) question(id string) (model.Question, bool) {
	for _, q := range f.questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
