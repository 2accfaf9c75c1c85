package form_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauracmd12/Front-Davivienda/form"
	"github.com/lauracmd12/Front-Davivienda/model"
)

func TestRenderQuestion(t *testing.T) {
	t.Run("required marker and description", func(t *testing.T) {
		var sb strings.Builder
		form.RenderQuestion(&sb, 1, model.Question{
			Type: model.TypeText, Title: "¿Cómo te llamas?", Description: "Nombre completo", Required: true,
		}, model.AnswerValue{})
		out := sb.String()
		assert.Contains(t, out, "¿Cómo te llamas? *")
		assert.Contains(t, out, "Nombre completo")
	})

	t.Run("options show the current selection", func(t *testing.T) {
		var sb strings.Builder
		form.RenderQuestion(&sb, 2, model.Question{
			Type: model.TypeRadio, Title: "Color", Options: []string{"Rojo", "Azul"},
		}, model.StringValue("Azul"))
		out := sb.String()
		assert.Contains(t, out, "( ) 1. Rojo")
		assert.Contains(t, out, "(x) 2. Azul")
	})

	t.Run("checkbox selection", func(t *testing.T) {
		var sb strings.Builder
		form.RenderQuestion(&sb, 3, model.Question{
			Type: model.TypeCheckbox, Title: "Colores", Options: []string{"Rojo", "Azul"},
		}, model.ListValue([]string{"Rojo"}))
		out := sb.String()
		assert.Contains(t, out, "[x] 1. Rojo")
		assert.Contains(t, out, "[ ] 2. Azul")
	})

	t.Run("rating scale", func(t *testing.T) {
		var sb strings.Builder
		form.RenderQuestion(&sb, 4, model.Question{Type: model.TypeRating, Title: "Servicio"},
			model.StringValue("3"))
		assert.Contains(t, sb.String(), "3/5")
	})
}

func TestParseInput(t *testing.T) {
	radio := model.Question{Type: model.TypeRadio, Options: []string{"Rojo", "Azul"}}
	checkbox := model.Question{Type: model.TypeCheckbox, Options: []string{"Rojo", "Azul", "Verde"}}
	rating := model.Question{Type: model.TypeRating}
	text := model.Question{Type: model.TypeText}

	t.Run("text keeps the line", func(t *testing.T) {
		v, err := form.ParseInput(text, "  hola mundo \n")
		require.NoError(t, err)
		assert.Equal(t, "hola mundo", v.Text())
	})

	t.Run("option by number or by literal text", func(t *testing.T) {
		v, err := form.ParseInput(radio, "2")
		require.NoError(t, err)
		assert.Equal(t, "Azul", v.Text())

		v, err = form.ParseInput(radio, "Rojo")
		require.NoError(t, err)
		assert.Equal(t, "Rojo", v.Text())

		_, err = form.ParseInput(radio, "3")
		assert.Error(t, err)
		_, err = form.ParseInput(radio, "Negro")
		assert.Error(t, err)
	})

	t.Run("checkbox takes a comma-separated list without duplicates", func(t *testing.T) {
		v, err := form.ParseInput(checkbox, "1, Verde, 1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Rojo", "Verde"}, v.List())
	})

	t.Run("rating bounds", func(t *testing.T) {
		v, err := form.ParseInput(rating, "5")
		require.NoError(t, err)
		assert.Equal(t, "5", v.Text())

		_, err = form.ParseInput(rating, "0")
		assert.Error(t, err)
		_, err = form.ParseInput(rating, "6")
		assert.Error(t, err)
	})

	t.Run("blank input clears the answer", func(t *testing.T) {
		v, err := form.ParseInput(checkbox, "")
		require.NoError(t, err)
		assert.True(t, v.IsList())
		assert.True(t, v.Empty())

		v, err = form.ParseInput(rating, "\n")
		require.NoError(t, err)
		assert.True(t, v.Empty())
	})
}
