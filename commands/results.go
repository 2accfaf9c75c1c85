package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/log"
	"github.com/lauracmd12/Front-Davivienda/model"
	"github.com/lauracmd12/Front-Davivienda/stats"
)

// Results prints the aggregated view of one survey: the per-question
// breakdown computed from the raw responses, plus the service's own metrics
// when its statistics endpoint answers. When it does not, those metrics are
// shown as unavailable; no number is ever made up in their place.
func Results(ctx context.Context, app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys results <survey-id>")
	}
	surveyID := args[0]

	survey, err := app.Client.GetSurvey(ctx, surveyID)
	if err != nil {
		return describeRemoteError("could not load the survey", err)
	}

	responses, err := app.Client.GetSurveyResponses(ctx, surveyID)
	if err != nil {
		return describeRemoteError("could not load the responses", err)
	}

	res := stats.Aggregate(survey, responses)
	if remote, err := app.Client.GetSurveyStats(ctx, surveyID); err == nil {
		res = stats.MergeRemote(res, remote)
	} else {
		log.Debugf("results.remote_stats: %s", err)
	}

	fmt.Printf("%s\n\n", survey.Title)
	fmt.Printf("responses:       %d\n", res.TotalResponses)
	if res.RemoteAvailable {
		fmt.Printf("completion rate: %.0f%%\n", res.CompletionRate)
		fmt.Printf("average time:    %.1f min\n", res.AverageTime)
	} else {
		fmt.Println("completion rate: not available")
		fmt.Println("average time:    not available")
	}

	for i, qs := range res.QuestionStats {
		fmt.Printf("\n%d. %s (%s, %d responses)\n", i+1, qs.QuestionTitle, qs.Type, qs.Responses)
		printQuestionStats(qs)
	}
	return nil
}

func printQuestionStats(qs model.QuestionStats) {
	switch model.QuestionType(qs.Type) {
	case model.TypeRadio, model.TypeSelect, model.TypeCheckbox:
		for _, b := range qs.Data {
			pct := 0.0
			if qs.Responses > 0 {
				pct = float64(b.Count) / float64(qs.Responses) * 100
			}
			fmt.Printf("   %-30s %s %d (%.0f%%)\n", b.Option, bar(pct), b.Count, pct)
		}

	case model.TypeRating:
		fmt.Printf("   average: %.1f/5\n", stats.Average(qs))
		for i := len(qs.Data) - 1; i >= 0; i-- {
			b := qs.Data[i]
			pct := 0.0
			if qs.Responses > 0 {
				pct = float64(b.Count) / float64(qs.Responses) * 100
			}
			fmt.Printf("   %d★ %s %d\n", b.Rating, bar(pct), b.Count)
		}

	default:
		fmt.Println("   free-text answers are not charted")
	}
}

func bar(pct float64) string {
	filled := int(pct / 100 * 20)
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// Export writes the raw responses of a survey to a CSV file.
func Export(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output file (default derived from the survey title)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: surveys export [-o file] <survey-id>")
	}
	surveyID := fs.Arg(0)

	survey, err := app.Client.GetSurvey(ctx, surveyID)
	if err != nil {
		return describeRemoteError("could not load the survey", err)
	}
	responses, err := app.Client.GetSurveyResponses(ctx, surveyID)
	if err != nil {
		return describeRemoteError("could not load the responses", err)
	}

	filename := *out
	if filename == "" {
		filename = stats.CSVFilename(survey)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := stats.WriteCSV(file, survey, responses); err != nil {
		return fmt.Errorf("could not write %s: %w", filename, err)
	}

	fmt.Printf("%d responses exported to %s\n", len(responses), filename)
	return nil
}
