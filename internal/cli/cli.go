// Package cli implements the terminal screens of the helpdesk client. All
// business behavior lives in the core services; this layer only parses
// flags, prompts, and renders.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
	"github.com/tracklyy/helpdesk-client/internal/core/service"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

// CLI holds every dependency a command can reach. Identity always comes
// from the session store via the auth service, never from ambient state.
type CLI struct {
	auth       *service.AuthService
	complaints *service.ComplaintService
	users      ports.UserGateway
	campus     ports.StatsGateway
	reminders  ports.ReminderGateway
	logger     zerolog.Logger

	in  io.Reader
	out io.Writer
}

func New(
	auth *service.AuthService,
	complaints *service.ComplaintService,
	users ports.UserGateway,
	campus ports.StatsGateway,
	reminders ports.ReminderGateway,
	logger zerolog.Logger,
	in io.Reader,
	out io.Writer,
) *CLI {
	return &CLI{
		auth:       auth,
		complaints: complaints,
		users:      users,
		campus:     campus,
		reminders:  reminders,
		logger:     logger,
		in:         in,
		out:        out,
	}
}

func (cli *CLI) printUsage() {
	fmt.Fprintln(cli.out, "Usage: helpdesk COMMAND [flags]")
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Account:")
	fmt.Fprintln(cli.out, "  register  -name NAME -email EMAIL [-role Student|Admin]  create an account")
	fmt.Fprintln(cli.out, "  login     -email EMAIL                                   log in (password prompted)")
	fmt.Fprintln(cli.out, "  logout                                                   clear the stored session")
	fmt.Fprintln(cli.out, "  whoami                                                   show the logged-in identity")
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Complaints:")
	fmt.Fprintln(cli.out, "  submit    -desc TEXT [-title T] [-category C] [-urgency U] [-assist]  file a complaint")
	fmt.Fprintln(cli.out, "  history                                                  list your complaints")
	fmt.Fprintln(cli.out, "  detail    -id ID                                         one complaint with assistant briefing")
	fmt.Fprintln(cli.out, "  dashboard [-watch DURATION]                              status summary, optionally refreshing")
	fmt.Fprintln(cli.out, "  stats                                                    campus-wide counters")
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Assistant:")
	fmt.Fprintln(cli.out, "  chat                                                     talk to Jaz")
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Admin:")
	fmt.Fprintln(cli.out, "  admin complaints [-status FILTER]                        triage listing, urgency-sorted")
	fmt.Fprintln(cli.out, "  admin setstatus  -id ID -status S [-note N] [-feedback F]")
	fmt.Fprintln(cli.out, "  admin delete     -id ID")
	fmt.Fprintln(cli.out, "  admin students")
	fmt.Fprintln(cli.out, "  admin rmuser     -id ID")
}

// Run dispatches args (including the program name at args[0]).
func (cli *CLI) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "register":
		return cli.register(ctx, args[2:])
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "submit":
		return cli.submit(ctx, args[2:])
	case "history":
		return cli.history(ctx)
	case "detail":
		return cli.detail(ctx, args[2:])
	case "dashboard":
		return cli.dashboard(ctx, args[2:])
	case "stats":
		return cli.campusStats(ctx)
	case "chat":
		return cli.chat(ctx)
	case "admin":
		return cli.admin(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// IsHelp reports whether err only means usage was printed.
func IsHelp(err error) bool {
	return errors.Is(err, errHelp)
}

// requireIdentity resolves the logged-in identity or tells the user to log
// in first.
func (cli *CLI) requireIdentity() (*domain.Identity, error) {
	identity, err := cli.auth.Current()
	if errors.Is(err, domain.ErrLoginRequired) {
		return nil, errors.New("you are not logged in; run 'helpdesk login' first")
	}
	return identity, err
}

func (cli *CLI) requireAdmin() (*domain.Identity, error) {
	identity, err := cli.requireIdentity()
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, errors.New("this command needs an Admin account")
	}
	return identity, nil
}

func (cli *CLI) promptPassword(label string) (string, error) {
	fmt.Fprintf(cli.out, "%s: ", label)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
