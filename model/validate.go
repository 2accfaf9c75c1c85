package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SurveyInput is the payload for creating or updating a survey, matching the
// service contract. Question ids are omitted: the service issues definitive
// ids when the survey is persisted.
type SurveyInput struct {
	Title       string          `json:"title" validate:"required,max=500"`
	Description string          `json:"description,omitempty" validate:"max=2000"`
	IsActive    bool            `json:"isActive"`
	IsPublic    bool            `json:"isPublic"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1"`
}

type QuestionInput struct {
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Order       int          `json:"order"`
}

var validate = validator.New()

// ValidateSurveyInput checks every save-time invariant and returns one
// message per problem, in question order. An empty result means the survey
// can be sent to the service.
func ValidateSurveyInput(in SurveyInput) []string {
	var errs []string

	if err := validate.Struct(in); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, structErrorMessage(fe))
		}
	}

	for i, q := range in.Questions {
		n := i + 1
		if strings.TrimSpace(q.Title) == "" {
			errs = append(errs, fmt.Sprintf("la pregunta %d debe tener un título", n))
		} else if len(q.Title) > 1000 {
			errs = append(errs, fmt.Sprintf("el título de la pregunta %d no puede exceder 1000 caracteres", n))
		}
		if !q.Type.Valid() {
			errs = append(errs, fmt.Sprintf("la pregunta %d debe tener un tipo válido", n))
			continue
		}
		if q.Type.HasOptions() {
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("la pregunta %d de tipo %s debe tener opciones", n, q.Type))
			}
			for _, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					errs = append(errs, fmt.Sprintf("la pregunta %d tiene opciones vacías", n))
					break
				}
			}
		}
	}

	// order values must be the dense sequence 0..n-1
	if len(in.Questions) > 0 {
		seen := make(map[int]bool, len(in.Questions))
		dense := true
		for _, q := range in.Questions {
			if q.Order < 0 || q.Order >= len(in.Questions) || seen[q.Order] {
				dense = false
				break
			}
			seen[q.Order] = true
		}
		if !dense {
			errs = append(errs, "el orden de las preguntas no es válido")
		}
	}

	return errs
}

func structErrorMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Title" && fe.Tag() == "required":
		return "el título es obligatorio"
	case fe.Field() == "Title" && fe.Tag() == "max":
		return "el título no puede exceder 500 caracteres"
	case fe.Field() == "Description":
		return "la descripción no puede exceder 2000 caracteres"
	case fe.Field() == "Questions":
		return "debe incluir al menos una pregunta"
	default:
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}

// InputFromQuestions converts builder output to the save payload, keeping
// options only for the types that use them.
func InputFromQuestions(title, description string, isActive, isPublic bool, questions []Question) SurveyInput {
	in := SurveyInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		IsActive:    isActive,
		IsPublic:    isPublic,
	}
	for _, q := range questions {
		qi := QuestionInput{
			Type:        q.Type,
			Title:       q.Title,
			Description: q.Description,
			Required:    q.Required,
			Order:       q.Order,
		}
		if q.Type.HasOptions() {
			qi.Options = q.Options
		}
		in.Questions = append(in.Questions, qi)
	}
	return in
}
