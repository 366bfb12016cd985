package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

func (cli *CLI) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	role := fs.String("role", domain.RoleStudent, "account role: Student or Admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		fs.Usage()
		return errHelp
	}

	password, err := cli.promptPassword("Choose a password")
	if err != nil {
		return err
	}

	user, err := cli.auth.Register(ctx, ports.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: password,
		Role:     *role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Registration successful 🎉 Welcome, %s! Please log in.\n", user.Name)
	return nil
}

func (cli *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errHelp
	}

	password, err := cli.promptPassword("Password")
	if err != nil {
		return err
	}

	identity, err := cli.auth.Login(ctx, *email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Welcome back, %s (%s).\n", identity.Name, identity.Role)
	return nil
}

func (cli *CLI) logout() error {
	if err := cli.auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out.")
	return nil
}

func (cli *CLI) whoami() error {
	identity, err := cli.requireIdentity()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s <%s> — %s\n", identity.Name, identity.Email, identity.Role)
	return nil
}
