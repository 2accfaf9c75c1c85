package stats

import (
	"encoding/csv"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/lauracmd12/Front-Davivienda/model"
)

// WriteCSV exports the raw responses as RFC 4180 CSV: a header row with the
// submission timestamp, respondent email and one column per question in order
// ascending, then one row per response. Checkbox answers are joined with
// ", ", unanswered cells stay empty, missing emails become "Anónimo". With
// zero responses only the header row is written.
func WriteCSV(w io.Writer, survey model.Survey, responses []model.SurveyResponse) error {
	questions := sortedQuestions(survey)

	cw := csv.NewWriter(w)

	header := []string{"Fecha de respuesta", "Email"}
	for _, q := range questions {
		header = append(header, q.Title)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, resp := range responses {
		row := make([]string, 0, len(header))
		row = append(row, resp.SubmittedAt.Format(time.RFC3339))
		if resp.RespondentEmail != "" {
			row = append(row, resp.RespondentEmail)
		} else {
			row = append(row, "Anónimo")
		}
		for _, q := range questions {
			row = append(row, cellValue(q.ID, resp))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cellValue(questionID string, resp model.SurveyResponse) string {
	for _, a := range resp.Answers {
		if a.QuestionID != questionID {
			continue
		}
		if a.Value.IsList() {
			return strings.Join(a.Value.List(), ", ")
		}
		return a.Value.Text()
	}
	return ""
}

var reUnsafeFilename = regexp.MustCompile(`[\\/:*?"<>|]+`)

// CSVFilename names the export file after the survey title.
func CSVFilename(survey model.Survey) string {
	title := strings.TrimSpace(survey.Title)
	if title == "" {
		title = "encuesta"
	}
	title = reUnsafeFilename.ReplaceAllString(title, "_")
	return title + "-resultados.csv"
}
