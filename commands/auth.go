package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/client"
)

func Login(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		var err error
		*email, err = promptLine("Email: ")
		if err != nil {
			return err
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	if *email == "" || password == "" {
		return errors.New("email and password are required")
	}

	result, err := app.Client.Login(ctx, *email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := app.Session.SignIn(result.Token, result.User); err != nil {
		return err
	}
	fmt.Printf("signed in as %s <%s>\n", result.User.Name, result.User.Email)
	return nil
}

func Register(ctx context.Context, app app.App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "display name")
	company := fs.String("company", "", "company (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *name == "" {
		return errors.New("both -email and -name are required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password == "" || password != confirm {
		return errors.New("passwords are empty or do not match")
	}

	user, err := app.Client.Register(ctx, client.RegisterInput{
		Email:    *email,
		Password: password,
		Name:     *name,
		Company:  *company,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("account created for %s <%s>, now run: surveys login -email %s\n", user.Name, user.Email, user.Email)
	return nil
}

func Logout(ctx context.Context, app app.App, args []string) error {
	if err := app.Session.SignOut(); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

func WhoAmI(ctx context.Context, app app.App, args []string) error {
	if !app.Session.Authenticated() {
		fmt.Println("anonymous (not signed in)")
		return nil
	}
	user := app.Session.User()
	fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}

func Ping(ctx context.Context, app app.App, args []string) error {
	if err := app.Client.TestConnection(ctx); err != nil {
		return fmt.Errorf("survey service unreachable: %w", err)
	}
	fmt.Println("survey service is reachable")
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
