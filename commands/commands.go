// Package commands wires the terminal commands to the application: one
// command per flow of the client (authentication, survey authoring, public
// response form, results). Commands validate their input before any network
// call; a remote failure is reported and leaves local state unchanged.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/lauracmd12/Front-Davivienda/app"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, app app.App, args []string) error
}

var commandTable []command

func init() {
	commandTable = []command{
		{"login", "sign in and store the session", Login},
		{"register", "create an account", Register},
		{"logout", "discard the stored session", Logout},
		{"whoami", "show the current session user", WhoAmI},
		{"ping", "check connectivity with the survey service", Ping},
		{"list", "list your surveys", ListSurveys},
		{"public", "list public surveys", ListPublicSurveys},
		{"show", "show one survey with its questions", ShowSurvey},
		{"delete", "delete one of your surveys", DeleteSurvey},
		{"draft", "author a survey locally (see 'draft help')", Draft},
		{"respond", "answer a public survey interactively", Respond},
		{"results", "show aggregated results for a survey", Results},
		{"export", "export raw responses as CSV", Export},
	}
}

// Run dispatches to the named command. args[0] is the command name.
func Run(ctx context.Context, app app.App, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		usage(os.Stdout)
		return nil
	}

	for _, cmd := range commandTable {
		if cmd.name == args[0] {
			return cmd.run(ctx, app, args[1:])
		}
	}

	usage(os.Stderr)
	return fmt.Errorf("unknown command %q", args[0])
}

func usage(w *os.File) {
	fmt.Fprintln(w, "usage: surveys [flags] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, cmd := range commandTable {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
}
