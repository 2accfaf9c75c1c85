// Package builder edits the ordered question list of a survey being
// authored. Every operation works on an in-memory slice and returns the
// resulting slice; nothing here touches the network. The builder is the
// single source of truth for question order.
package builder

import (
	"github.com/google/uuid"

	"github.com/lauracmd12/Front-Davivienda/model"
)

// TempIDPrefix marks question ids issued by the builder. The service
// replaces them with definitive ids when the survey is persisted.
const TempIDPrefix = "temp-"

// Add appends a blank text question at the end of the list.
func Add(questions []model.Question) []model.Question {
	q := model.Question{
		ID:       TempIDPrefix + uuid.NewString(),
		Type:     model.TypeText,
		Required: false,
		Options:  []string{},
		Order:    len(questions),
	}
	return append(copyOf(questions), q)
}

// Patch carries the fields Update may change. Nil pointers leave the
// corresponding field untouched.
type Patch struct {
	Type        *model.QuestionType
	Title       *string
	Description *string
	Required    *bool
	Options     *[]string
}

// Update merges patch fields into the question at index. Out-of-range
// indices leave the list unchanged. Order is never modified here.
func Update(questions []model.Question, index int, patch Patch) []model.Question {
	if index < 0 || index >= len(questions) {
		return questions
	}
	out := copyOf(questions)
	q := &out[index]
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = *patch.Options
	}
	return out
}

// Delete removes the question at index and renumbers the remaining
// questions to their positional index.
func Delete(questions []model.Question, index int) []model.Question {
	if index < 0 || index >= len(questions) {
		return questions
	}
	out := copyOf(questions)
	out = append(out[:index], out[index+1:]...)
	return renumber(out)
}

// AddOption appends an empty option to the question at index.
func AddOption(questions []model.Question, index int) []model.Question {
	if index < 0 || index >= len(questions) {
		return questions
	}
	out := copyOf(questions)
	out[index].Options = append(copyOptions(out[index].Options), "")
	return out
}

// UpdateOption replaces one option value of the question at index.
func UpdateOption(questions []model.Question, index, optionIndex int, value string) []model.Question {
	if index < 0 || index >= len(questions) {
		return questions
	}
	if optionIndex < 0 || optionIndex >= len(questions[index].Options) {
		return questions
	}
	out := copyOf(questions)
	opts := copyOptions(out[index].Options)
	opts[optionIndex] = value
	out[index].Options = opts
	return out
}

// DeleteOption removes one option of the question at index.
func DeleteOption(questions []model.Question, index, optionIndex int) []model.Question {
	if index < 0 || index >= len(questions) {
		return questions
	}
	if optionIndex < 0 || optionIndex >= len(questions[index].Options) {
		return questions
	}
	out := copyOf(questions)
	opts := copyOptions(out[index].Options)
	out[index].Options = append(opts[:optionIndex], opts[optionIndex+1:]...)
	return out
}

// Move takes the question at from and reinserts it at to, then renumbers
// every question to its positional index. A destination past the end clamps
// to the last position. This and Delete are the only operations that touch
// the order fields.
func Move(questions []model.Question, from, to int) []model.Question {
	if from < 0 || from >= len(questions) {
		return questions
	}
	if to < 0 {
		to = 0
	}
	if to >= len(questions) {
		to = len(questions) - 1
	}
	if from == to {
		return questions
	}

	out := copyOf(questions)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]model.Question{moved}, out[to:]...)...)
	return renumber(out)
}

func renumber(questions []model.Question) []model.Question {
	for i := range questions {
		questions[i].Order = i
	}
	return questions
}

func copyOf(questions []model.Question) []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	return out
}

func copyOptions(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	return out
}
