package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauracmd12/Front-Davivienda/form"
	"github.com/lauracmd12/Front-Davivienda/model"
)

func sampleSurvey() model.Survey {
	return model.Survey{
		ID:       "sv-1",
		Title:    "Satisfacción",
		IsActive: true,
		Questions: []model.Question{
			{ID: "q-rating", Type: model.TypeRating, Title: "Califica el servicio", Order: 2},
			{ID: "q-name", Type: model.TypeText, Title: "¿Cómo te llamas?", Required: true, Order: 0},
			{ID: "q-color", Type: model.TypeCheckbox, Title: "Colores favoritos", Required: true,
				Options: []string{"Rojo", "Azul", "Verde"}, Order: 1},
			{ID: "q-city", Type: model.TypeSelect, Title: "Ciudad", Options: []string{"Bogotá", "Medellín"}, Order: 3},
		},
	}
}

func TestQuestionsSortedByOrder(t *testing.T) {
	f := form.New(sampleSurvey())
	var ids []string
	for _, q := range f.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"q-name", "q-color", "q-rating", "q-city"}, ids)
}

func TestSetAnswer(t *testing.T) {
	f := form.New(sampleSurvey())

	require.NoError(t, f.SetAnswer("q-name", model.StringValue("Laura")))
	require.NoError(t, f.SetAnswer("q-rating", model.StringValue("4")))
	require.NoError(t, f.SetAnswer("q-city", model.StringValue("Bogotá")))
	require.NoError(t, f.SetAnswer("q-color", model.ListValue([]string{"Rojo"})))

	t.Run("overwrites the prior value", func(t *testing.T) {
		require.NoError(t, f.SetAnswer("q-name", model.StringValue("Ana")))
		v, ok := f.Answer("q-name")
		require.True(t, ok)
		assert.Equal(t, "Ana", v.Text())
	})

	t.Run("rejects values that do not fit the type", func(t *testing.T) {
		assert.Error(t, f.SetAnswer("q-rating", model.StringValue("6")))
		assert.Error(t, f.SetAnswer("q-rating", model.StringValue("great")))
		assert.Error(t, f.SetAnswer("q-city", model.StringValue("Cali")))
		assert.Error(t, f.SetAnswer("q-color", model.StringValue("Rojo")), "checkbox takes a list")
		assert.Error(t, f.SetAnswer("q-color", model.ListValue([]string{"Negro"})))
		assert.ErrorIs(t, f.SetAnswer("missing", model.StringValue("x")), form.ErrUnknownQuestion)
	})
}

func TestToggleOption(t *testing.T) {
	f := form.New(sampleSurvey())

	require.NoError(t, f.ToggleOption("q-color", "Rojo"))
	require.NoError(t, f.ToggleOption("q-color", "Azul"))
	v, _ := f.Answer("q-color")
	assert.Equal(t, []string{"Rojo", "Azul"}, v.List())

	t.Run("toggling again removes, never duplicates", func(t *testing.T) {
		require.NoError(t, f.ToggleOption("q-color", "Rojo"))
		v, _ := f.Answer("q-color")
		assert.Equal(t, []string{"Azul"}, v.List())

		require.NoError(t, f.ToggleOption("q-color", "Azul"))
		require.NoError(t, f.ToggleOption("q-color", "Azul"))
		v, _ = f.Answer("q-color")
		assert.Equal(t, []string{"Azul"}, v.List())
	})

	t.Run("only for checkbox questions", func(t *testing.T) {
		assert.Error(t, f.ToggleOption("q-city", "Bogotá"))
		assert.Error(t, f.ToggleOption("q-color", "Negro"))
	})
}

func TestMissingRequired(t *testing.T) {
	f := form.New(sampleSurvey())

	missing := f.MissingRequired()
	require.Len(t, missing, 2)
	assert.Equal(t, "q-name", missing[0].ID)
	assert.Equal(t, "q-color", missing[1].ID)

	require.NoError(t, f.SetAnswer("q-name", model.StringValue("Laura")))
	require.NoError(t, f.SetAnswer("q-color", model.ListValue(nil)))
	missing = f.MissingRequired()
	require.Len(t, missing, 1)
	assert.Equal(t, "q-color", missing[0].ID, "empty checkbox selection counts as unanswered")

	require.NoError(t, f.ToggleOption("q-color", "Verde"))
	assert.Empty(t, f.MissingRequired())
}

type fakeSubmitter struct {
	calls int
	err   error
	last  model.SurveyResponse
}

func (s *fakeSubmitter) SubmitResponse(_ context.Context, _ string, resp model.SurveyResponse) error {
	s.calls++
	s.last = resp
	return s.err
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while required questions are open", func(t *testing.T) {
		f := form.New(sampleSurvey())
		svc := &fakeSubmitter{}

		err := f.Submit(ctx, svc, "")
		var missing *form.MissingRequiredError
		require.ErrorAs(t, err, &missing)
		assert.Len(t, missing.Questions, 2)
		assert.Zero(t, svc.calls, "nothing must be sent")
		assert.Equal(t, form.StateEditing, f.State())
	})

	t.Run("success reaches the terminal state", func(t *testing.T) {
		f := completedForm(t)
		svc := &fakeSubmitter{}

		require.NoError(t, f.Submit(ctx, svc, "laura@example.com"))
		assert.Equal(t, form.StateSubmitted, f.State())
		assert.Equal(t, 1, svc.calls)
		assert.Equal(t, "sv-1", svc.last.SurveyID)
		assert.Equal(t, "laura@example.com", svc.last.RespondentEmail)

		assert.ErrorIs(t, f.Submit(ctx, svc, ""), form.ErrAlreadySubmitted)
		assert.Equal(t, 1, svc.calls, "a second submit must not reach the service")
	})

	t.Run("failure returns the form to editing", func(t *testing.T) {
		f := completedForm(t)
		svc := &fakeSubmitter{err: errors.New("boom")}

		require.Error(t, f.Submit(ctx, svc, ""))
		assert.Equal(t, form.StateEditing, f.State())

		svc.err = nil
		require.NoError(t, f.Submit(ctx, svc, ""))
		assert.Equal(t, 2, svc.calls)
	})
}

func TestResponsePayload(t *testing.T) {
	f := completedForm(t)
	require.NoError(t, f.SetAnswer("q-rating", model.StringValue("5")))

	resp := f.ResponsePayload("")
	assert.Equal(t, "sv-1", resp.SurveyID)
	require.Len(t, resp.Answers, 3, "unanswered questions produce no entry")

	byID := map[string]model.AnswerValue{}
	for _, a := range resp.Answers {
		byID[a.QuestionID] = a.Value
	}
	assert.Equal(t, "Laura", byID["q-name"].Text())
	assert.Equal(t, []string{"Azul"}, byID["q-color"].List())
	assert.Equal(t, "5", byID["q-rating"].Text())
	_, answered := byID["q-city"]
	assert.False(t, answered)
}

func completedForm(t *testing.T) *form.Form {
	t.Helper()
	f := form.New(sampleSurvey())
	require.NoError(t, f.SetAnswer("q-name", model.StringValue("Laura")))
	require.NoError(t, f.ToggleOption("q-color", "Azul"))
	return f
}
