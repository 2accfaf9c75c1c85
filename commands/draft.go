package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/builder"
	"github.com/lauracmd12/Front-Davivienda/database"
	"github.com/lauracmd12/Front-Davivienda/model"
)

// draftRecord is what the local store keeps per draft: the survey header
// fields plus the builder's question list. SurveyID is set when the draft
// was pulled from an existing survey; pushing such a draft updates instead
// of creating.
type draftRecord struct {
	SurveyID    string           `json:"surveyId,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	IsActive    bool             `json:"isActive"`
	IsPublic    bool             `json:"isPublic"`
	Questions   []model.Question `json:"questions"`
}

func Draft(ctx context.Context, app app.App, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		draftUsage()
		return nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "new":
		return draftNew(app, rest)
	case "pull":
		return draftPull(ctx, app, rest)
	case "list":
		return draftList(app)
	case "show":
		return draftShow(app, rest)
	case "drop":
		return draftDrop(app, rest)
	case "set":
		return draftSet(app, rest)
	case "add":
		return draftAddQuestion(app, rest)
	case "edit":
		return draftEditQuestion(app, rest)
	case "rm":
		return draftRemoveQuestion(app, rest)
	case "move":
		return draftMoveQuestion(app, rest)
	case "opt":
		return draftOption(app, rest)
	case "push":
		return draftPush(ctx, app, rest)
	}

	draftUsage()
	return fmt.Errorf("unknown draft command %q", sub)
}

func draftUsage() {
	fmt.Println(`usage: surveys draft <command> [arguments]

  new <name> [-title T] [-desc D] [-public] [-active]   start a draft
  pull <survey-id> <name>                               draft from an existing survey
  list                                                  list drafts
  show <name>                                           print a draft
  drop <name>                                           discard a draft
  set <name> [-title T] [-desc D] [-public=B] [-active=B]
  add <name>                                            append a blank question
  edit <name> <n> [-type T] [-title T] [-desc D] [-required=B]
  rm <name> <n>                                         delete question n
  move <name> <from> <to>                               reorder questions
  opt add <name> <n> <value>                            append an option
  opt set <name> <n> <i> <value>                        change option i
  opt rm <name> <n> <i>                                 delete option i
  push <name>                                           validate and save to the service

question and option numbers are 1-based as printed by 'draft show'.`)
}

func draftNew(app app.App, args []string) error {
	fs := flag.NewFlagSet("draft new", flag.ContinueOnError)
	title := fs.String("title", "", "survey title")
	desc := fs.String("desc", "", "survey description")
	public := fs.Bool("public", true, "listed on the public page")
	active := fs.Bool("active", true, "accepting responses")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: surveys draft new <name> [flags]")
	}
	name := fs.Arg(0)

	if _, err := app.Store.LoadDraft(name); err == nil {
		return fmt.Errorf("draft %q already exists", name)
	}

	d := draftRecord{
		Title:       *title,
		Description: *desc,
		IsPublic:    *public,
		IsActive:    *active,
		Questions:   []model.Question{},
	}
	if err := saveDraft(app, name, d); err != nil {
		return err
	}
	fmt.Printf("draft %q created\n", name)
	return nil
}

func draftPull(ctx context.Context, app app.App, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: surveys draft pull <survey-id> <name>")
	}
	surveyID, name := args[0], args[1]

	if _, err := app.Store.LoadDraft(name); err == nil {
		return fmt.Errorf("draft %q already exists", name)
	}

	survey, err := app.Client.GetSurvey(ctx, surveyID)
	if err != nil {
		return describeRemoteError("could not load the survey", err)
	}

	d := draftRecord{
		SurveyID:    survey.ID,
		Title:       survey.Title,
		Description: survey.Description,
		IsActive:    survey.IsActive,
		IsPublic:    survey.IsPublic,
		Questions:   survey.Questions,
	}
	if err := saveDraft(app, name, d); err != nil {
		return err
	}
	fmt.Printf("draft %q created from survey %s\n", name, survey.ID)
	return nil
}

func draftList(app app.App) error {
	names, err := app.Store.ListDrafts()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no drafts")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func draftShow(app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys draft show <name>")
	}
	d, err := loadDraft(app, args[0])
	if err != nil {
		return err
	}

	survey := model.Survey{
		ID:          d.SurveyID,
		Title:       d.Title,
		Description: d.Description,
		IsActive:    d.IsActive,
		IsPublic:    d.IsPublic,
		Questions:   d.Questions,
	}
	printSurvey(survey)
	return nil
}

func draftDrop(app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys draft drop <name>")
	}
	if err := app.Store.DeleteDraft(args[0]); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("no draft named %q", args[0])
		}
		return err
	}
	fmt.Printf("draft %q discarded\n", args[0])
	return nil
}

func draftSet(app app.App, args []string) error {
	fs := flag.NewFlagSet("draft set", flag.ContinueOnError)
	title := fs.String("title", "", "survey title")
	desc := fs.String("desc", "", "survey description")
	public := fs.String("public", "", "listed on the public page (true/false)")
	active := fs.String("active", "", "accepting responses (true/false)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: surveys draft set <name> [flags]")
	}

	name := fs.Arg(0)
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			d.Title = *title
		case "desc":
			d.Description = *desc
		}
	})
	if *public != "" {
		d.IsPublic, err = strconv.ParseBool(*public)
		if err != nil {
			return fmt.Errorf("-public: %w", err)
		}
	}
	if *active != "" {
		d.IsActive, err = strconv.ParseBool(*active)
		if err != nil {
			return fmt.Errorf("-active: %w", err)
		}
	}

	return saveDraft(app, name, d)
}

func draftAddQuestion(app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys draft add <name>")
	}
	name := args[0]
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}

	d.Questions = builder.Add(d.Questions)
	if err := saveDraft(app, name, d); err != nil {
		return err
	}
	fmt.Printf("question %d added\n", len(d.Questions))
	return nil
}

func draftEditQuestion(app app.App, args []string) error {
	fs := flag.NewFlagSet("draft edit", flag.ContinueOnError)
	qtype := fs.String("type", "", "question type (text, textarea, radio, checkbox, select, rating)")
	title := fs.String("title", "", "question title")
	desc := fs.String("desc", "", "question description")
	required := fs.String("required", "", "answer is mandatory (true/false)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: surveys draft edit <name> <question> [flags]")
	}

	name := fs.Arg(0)
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}
	index, err := questionIndex(fs.Arg(1), len(d.Questions))
	if err != nil {
		return err
	}

	var patch builder.Patch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "desc":
			patch.Description = desc
		}
	})
	if *qtype != "" {
		t := model.QuestionType(*qtype)
		if !t.Valid() {
			return fmt.Errorf("unknown question type %q", *qtype)
		}
		patch.Type = &t
	}
	if *required != "" {
		b, err := strconv.ParseBool(*required)
		if err != nil {
			return fmt.Errorf("-required: %w", err)
		}
		patch.Required = &b
	}

	d.Questions = builder.Update(d.Questions, index, patch)
	return saveDraft(app, name, d)
}

func draftRemoveQuestion(app app.App, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: surveys draft rm <name> <question>")
	}
	name := args[0]
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}
	index, err := questionIndex(args[1], len(d.Questions))
	if err != nil {
		return err
	}

	d.Questions = builder.Delete(d.Questions, index)
	return saveDraft(app, name, d)
}

func draftMoveQuestion(app app.App, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: surveys draft move <name> <from> <to>")
	}
	name := args[0]
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}
	from, err := questionIndex(args[1], len(d.Questions))
	if err != nil {
		return err
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad position %q", args[2])
	}

	d.Questions = builder.Move(d.Questions, from, to-1)
	return saveDraft(app, name, d)
}

func draftOption(app app.App, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: surveys draft opt (add|set|rm) <name> <question> ...")
	}
	sub, name := args[0], args[1]
	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}
	index, err := questionIndex(args[2], len(d.Questions))
	if err != nil {
		return err
	}

	switch sub {
	case "add":
		if len(args) != 4 {
			return errors.New("usage: surveys draft opt add <name> <question> <value>")
		}
		d.Questions = builder.AddOption(d.Questions, index)
		d.Questions = builder.UpdateOption(d.Questions, index, len(d.Questions[index].Options)-1, args[3])

	case "set":
		if len(args) != 5 {
			return errors.New("usage: surveys draft opt set <name> <question> <option> <value>")
		}
		optIndex, err := optionIndex(args[3], len(d.Questions[index].Options))
		if err != nil {
			return err
		}
		d.Questions = builder.UpdateOption(d.Questions, index, optIndex, args[4])

	case "rm":
		if len(args) != 4 {
			return errors.New("usage: surveys draft opt rm <name> <question> <option>")
		}
		optIndex, err := optionIndex(args[3], len(d.Questions[index].Options))
		if err != nil {
			return err
		}
		d.Questions = builder.DeleteOption(d.Questions, index, optIndex)

	default:
		return fmt.Errorf("unknown option command %q", sub)
	}

	return saveDraft(app, name, d)
}

func draftPush(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("draft push", flag.ContinueOnError)
	keep := fs.Bool("keep", false, "keep the draft after a successful push")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: surveys draft push [-keep] <name>")
	}
	name := fs.Arg(0)

	d, err := loadDraft(app, name)
	if err != nil {
		return err
	}

	input := model.InputFromQuestions(d.Title, d.Description, d.IsActive, d.IsPublic, d.Questions)
	if problems := model.ValidateSurveyInput(input); len(problems) > 0 {
		for _, p := range problems {
			fmt.Println("-", p)
		}
		return errors.New("the draft is not valid, nothing was sent")
	}

	var survey model.Survey
	if d.SurveyID != "" {
		survey, err = app.Client.UpdateSurvey(ctx, d.SurveyID, input)
	} else {
		survey, err = app.Client.CreateSurvey(ctx, input)
	}
	if err != nil {
		return describeRemoteError("could not save the survey", err)
	}

	if *keep {
		d.SurveyID = survey.ID
		if err := saveDraft(app, name, d); err != nil {
			return err
		}
	} else if err := app.Store.DeleteDraft(name); err != nil && !errors.Is(err, database.ErrNotFound) {
		return err
	}

	fmt.Printf("survey saved with id %s\n", survey.ID)
	return nil
}

func loadDraft(app app.App, name string) (draftRecord, error) {
	raw, err := app.Store.LoadDraft(name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return draftRecord{}, fmt.Errorf("no draft named %q", name)
		}
		return draftRecord{}, err
	}
	var d draftRecord
	if err := json.Unmarshal(raw, &d); err != nil {
		return draftRecord{}, fmt.Errorf("draft %q is corrupt: %w", name, err)
	}
	return d, nil
}

func saveDraft(app app.App, name string, d draftRecord) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return app.Store.SaveDraft(name, raw)
}

func questionIndex(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("no question %q (the draft has %d)", arg, count)
	}
	return n - 1, nil
}

func optionIndex(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("no option %q (the question has %d)", arg, count)
	}
	return n - 1, nil
}
