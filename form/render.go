package form

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lauracmd12/Front-Davivienda/model"
)

// RenderQuestion writes the terminal control for one question: a free-text
// prompt, a numbered option list, a checkbox list with the current selection,
// or a 1-5 rating scale.
func RenderQuestion(w io.Writer, number int, q model.Question, current model.AnswerValue) {
	mark := ""
	if q.Required {
		mark = " *"
	}
	fmt.Fprintf(w, "%d. %s%s\n", number, q.Title, mark)
	if q.Description != "" {
		fmt.Fprintf(w, "   %s\n", q.Description)
	}

	switch q.Type {
	case model.TypeText:
		fmt.Fprintf(w, "   > %s\n", current.Text())

	case model.TypeTextarea:
		fmt.Fprintf(w, "   > %s\n", current.Text())

	case model.TypeRadio, model.TypeSelect:
		for i, opt := range q.Options {
			selected := " "
			if current.Text() == opt {
				selected = "x"
			}
			fmt.Fprintf(w, "   (%s) %d. %s\n", selected, i+1, opt)
		}

	case model.TypeCheckbox:
		for i, opt := range q.Options {
			selected := " "
			if current.Contains(opt) {
				selected = "x"
			}
			fmt.Fprintf(w, "   [%s] %d. %s\n", selected, i+1, opt)
		}

	case model.TypeRating:
		stars := 0
		if n, err := strconv.Atoi(current.Text()); err == nil {
			stars = n
		}
		fmt.Fprintf(w, "   %s%s %d/5\n", strings.Repeat("★", stars), strings.Repeat("☆", 5-stars), stars)
	}
}

// ParseInput converts one line of terminal input into the answer value for a
// question. Option questions accept the option number or the literal option
// text; checkbox input is a comma-separated list of either. A blank line
// clears the answer.
func ParseInput(q model.Question, line string) (model.AnswerValue, error) {
	line = strings.TrimSpace(line)

	switch q.Type {
	case model.TypeText, model.TypeTextarea:
		return model.StringValue(line), nil

	case model.TypeRadio, model.TypeSelect:
		if line == "" {
			return model.StringValue(""), nil
		}
		opt, err := resolveOption(q.Options, line)
		if err != nil {
			return model.AnswerValue{}, err
		}
		return model.StringValue(opt), nil

	case model.TypeCheckbox:
		if line == "" {
			return model.ListValue(nil), nil
		}
		var selected []string
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			opt, err := resolveOption(q.Options, part)
			if err != nil {
				return model.AnswerValue{}, err
			}
			if !contains(selected, opt) {
				selected = append(selected, opt)
			}
		}
		return model.ListValue(selected), nil

	case model.TypeRating:
		if line == "" {
			return model.StringValue(""), nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > 5 {
			return model.AnswerValue{}, fmt.Errorf("rating must be a number between 1 and 5")
		}
		return model.StringValue(strconv.Itoa(n)), nil

	default:
		return model.AnswerValue{}, fmt.Errorf("unsupported question type %q", q.Type)
	}
}

func resolveOption(options []string, input string) (string, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("option %d out of range", n)
		}
		return options[n-1], nil
	}
	for _, opt := range options {
		if opt == input {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%q is not a listed option", input)
}
