package model

import "time"

type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeTextarea QuestionType = "textarea"
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
	TypeSelect   QuestionType = "select"
	TypeRating   QuestionType = "rating"
)

// QuestionTypes lists every supported type, in display order.
var QuestionTypes = []QuestionType{
	TypeText, TypeTextarea, TypeRadio, TypeCheckbox, TypeSelect, TypeRating,
}

func (t QuestionType) Valid() bool {
	switch t {
	case TypeText, TypeTextarea, TypeRadio, TypeCheckbox, TypeSelect, TypeRating:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry an options list.
// For the other types the options field is meaningless and must be ignored.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeRadio, TypeCheckbox, TypeSelect:
		return true
	}
	return false
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Survey struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	IsPublic    bool       `json:"isPublic"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	ID          string       `json:"id"`
	SurveyID    string       `json:"surveyId,omitempty"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Order       int          `json:"order"`
}

type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

// SurveyResponse is one respondent's submission. It is immutable once
// created: the client only ever appends new responses and reads them back.
type SurveyResponse struct {
	ID              string    `json:"id"`
	SurveyID        string    `json:"surveyId"`
	RespondentEmail string    `json:"respondentEmail,omitempty"`
	Answers         []Answer  `json:"answers"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type SurveyStats struct {
	TotalResponses int             `json:"totalResponses"`
	CompletionRate float64         `json:"completionRate"`
	AverageTime    float64         `json:"averageTime"`
	QuestionStats  []QuestionStats `json:"questionStats"`
}

type QuestionStats struct {
	QuestionID    string   `json:"questionId"`
	QuestionTitle string   `json:"questionTitle,omitempty"`
	Type          string   `json:"type,omitempty"`
	Responses     int      `json:"responses"`
	Data          []Bucket `json:"data"`
}

// Bucket is one entry of QuestionStats.Data: an (option, count) pair for
// choice questions, a (rating, count) pair for rating questions.
type Bucket struct {
	Option string `json:"option,omitempty"`
	Rating int    `json:"rating,omitempty"`
	Count  int    `json:"count"`
}
