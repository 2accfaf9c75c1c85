package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/client"
	"github.com/lauracmd12/Front-Davivienda/httpx"
	"github.com/lauracmd12/Front-Davivienda/model"
)

func ListSurveys(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	activeOnly := fs.Bool("active", false, "only surveys accepting responses")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var surveys []model.Survey
	var err error
	if *activeOnly {
		surveys, err = app.Client.MyActiveSurveys(ctx)
	} else {
		surveys, err = app.Client.MySurveys(ctx)
	}
	if err != nil {
		return describeRemoteError("could not load your surveys", err)
	}

	printSurveyTable(surveys)
	return nil
}

func ListPublicSurveys(ctx context.Context, app app.App, args []string) error {
	surveys, err := app.Client.PublicSurveys(ctx)
	if err != nil {
		return describeRemoteError("could not load public surveys", err)
	}
	printSurveyTable(surveys)
	return nil
}

func ShowSurvey(ctx context.Context, app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys show <survey-id>")
	}

	survey, err := app.Client.GetSurvey(ctx, args[0])
	if err != nil {
		return describeRemoteError("could not load the survey", err)
	}

	printSurvey(survey)
	return nil
}

func DeleteSurvey(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: surveys delete [-yes] <survey-id>")
	}
	id := fs.Arg(0)

	if !*yes {
		answer, err := promptLine(fmt.Sprintf("delete survey %s? [y/N] ", id))
		if err != nil {
			return err
		}
		if answer != "y" && answer != "Y" {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := app.Client.DeleteSurvey(ctx, id); err != nil {
		return describeRemoteError("could not delete the survey", err)
	}
	fmt.Println("survey deleted")
	return nil
}

func printSurveyTable(surveys []model.Survey) {
	if len(surveys) == 0 {
		fmt.Println("no surveys")
		return
	}
	sort.SliceStable(surveys, func(i, j int) bool {
		return surveys[i].CreatedAt.After(surveys[j].CreatedAt)
	})
	fmt.Printf("%-36s  %-7s  %-7s  %s\n", "ID", "ACTIVE", "PUBLIC", "TITLE")
	for _, s := range surveys {
		fmt.Printf("%-36s  %-7t  %-7t  %s\n", s.ID, s.IsActive, s.IsPublic, s.Title)
	}
}

func printSurvey(survey model.Survey) {
	fmt.Printf("%s\n", survey.Title)
	if survey.Description != "" {
		fmt.Printf("%s\n", survey.Description)
	}
	fmt.Printf("id: %s  active: %t  public: %t  questions: %d\n\n",
		survey.ID, survey.IsActive, survey.IsPublic, len(survey.Questions))

	questions := make([]model.Question, len(survey.Questions))
	copy(questions, survey.Questions)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })

	for i, q := range questions {
		mark := ""
		if q.Required {
			mark = " *"
		}
		fmt.Printf("%d. [%s] %s%s\n", i+1, q.Type, q.Title, mark)
		if q.Description != "" {
			fmt.Printf("   %s\n", q.Description)
		}
		if q.Type.HasOptions() {
			for _, opt := range q.Options {
				fmt.Printf("   - %s\n", opt)
			}
		}
	}
}

// describeRemoteError keeps the caller's message while surfacing what the
// service said. Not-found and auth failures read as such instead of a bare
// status code.
func describeRemoteError(msg string, err error) error {
	switch {
	case errors.Is(err, client.ErrNoSession):
		return errors.New(msg + ": sign in first (surveys login)")
	case httpx.IsNotFound(err):
		return errors.New(msg + ": not found")
	case httpx.IsUnauthorized(err):
		return errors.New(msg + ": session rejected, sign in again")
	}
	return fmt.Errorf("%s: %w", msg, err)
}
