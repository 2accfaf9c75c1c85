package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/form"
	"github.com/lauracmd12/Front-Davivienda/model"
)

// Respond walks through a public survey question by question, collects the
// answers and submits them. Required questions that are left unanswered block
// submission before anything is sent.
func Respond(ctx context.Context, app app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: surveys respond <survey-id>")
	}

	survey, err := app.Client.GetPublicSurvey(ctx, args[0])
	if err != nil {
		return describeRemoteError("could not load the survey", err)
	}
	if !survey.IsActive {
		return errors.New("this survey is not accepting responses")
	}

	f := form.New(survey)

	fmt.Printf("%s\n", survey.Title)
	if survey.Description != "" {
		fmt.Printf("%s\n", survey.Description)
	}
	required := 0
	for _, q := range f.Questions() {
		if q.Required {
			required++
		}
	}
	fmt.Printf("%d questions, %d required (*)\n\n", len(f.Questions()), required)

	reader := bufio.NewReader(os.Stdin)
	for i, q := range f.Questions() {
		if err := askQuestion(f, reader, i+1, q); err != nil {
			return err
		}
	}

	email, err := promptLine("Email (optional): ")
	if err != nil {
		return err
	}

	if missing := f.MissingRequired(); len(missing) > 0 {
		fmt.Println("these required questions are still unanswered:")
		for _, q := range missing {
			fmt.Println("-", q.Title)
		}
		return errors.New("response not sent")
	}

	if err := f.Submit(ctx, app.Client, email); err != nil {
		return describeRemoteError("could not send the response", err)
	}

	fmt.Println("\nresponse sent, thank you for participating")
	return nil
}

func askQuestion(f *form.Form, reader *bufio.Reader, number int, q model.Question) error {
	for {
		fmt.Println()
		current, _ := f.Answer(q.ID)
		form.RenderQuestion(os.Stdout, number, q, current)
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		value, err := form.ParseInput(q, line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := f.SetAnswer(q.ID, value); err != nil {
			fmt.Println(err)
			continue
		}
		return nil
	}
}
