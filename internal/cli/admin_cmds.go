package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
	"github.com/tracklyy/helpdesk-client/internal/core/stats"
)

func (cli *CLI) admin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "complaints":
		return cli.adminComplaints(ctx, args[1:])
	case "setstatus":
		return cli.adminSetStatus(ctx, args[1:])
	case "delete":
		return cli.adminDelete(ctx, args[1:])
	case "students":
		return cli.adminStudents(ctx)
	case "rmuser":
		return cli.adminRemoveUser(ctx, args[1:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *CLI) adminComplaints(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin complaints", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	filter := fs.String("status", stats.FilterAll, "All, Pending, In Progress or Resolved")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := cli.requireAdmin(); err != nil {
		return err
	}

	list, err := cli.complaints.ListAll(ctx)
	if err != nil {
		return err
	}

	cli.renderSummary(stats.Compute(list))
	fmt.Fprintln(cli.out)

	visible := stats.FilterByStatus(stats.SortByUrgency(list), *filter)
	if len(visible) == 0 {
		fmt.Fprintln(cli.out, "No complaints found.")
		return nil
	}
	cli.renderComplaintTable(visible, true)
	return nil
}

// adminSetStatus persists the new status, then reconciles the summary
// optimistically from the pre-fetched snapshot instead of refetching. One
// strategy per mutation, never both.
func (cli *CLI) adminSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin setstatus", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "complaint id")
	status := fs.String("status", "", "Pending, In Progress or Resolved")
	note := fs.String("note", "", "resolution note")
	feedback := fs.String("feedback", "", "feedback for the student")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *status == "" {
		fs.Usage()
		return errHelp
	}

	if _, err := cli.requireAdmin(); err != nil {
		return err
	}

	list, err := cli.complaints.ListAll(ctx)
	if err != nil {
		return err
	}
	previous, err := findComplaint(list, *id)
	if err != nil {
		return err
	}

	updated, err := cli.complaints.SetStatus(ctx, previous.ID, domain.Status(*status), ports.StatusExtras{
		ResolutionNote: *note,
		AdminFeedback:  *feedback,
	})
	if err != nil {
		return err
	}

	summary := stats.Compute(list)
	summary.ApplyStatusChange(previous.Status, updated.Status)

	fmt.Fprintf(cli.out, "Ticket %s: %s → %s\n", shortID(updated.ID), previous.Status, updated.Status)
	cli.renderSummary(summary)
	return nil
}

// adminDelete removes the complaint and decrements exactly the bucket the
// deleted ticket occupied.
func (cli *CLI) adminDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin delete", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "complaint id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	if _, err := cli.requireAdmin(); err != nil {
		return err
	}

	list, err := cli.complaints.ListAll(ctx)
	if err != nil {
		return err
	}
	doomed, err := findComplaint(list, *id)
	if err != nil {
		return err
	}

	if err := cli.complaints.Remove(ctx, doomed.ID); err != nil {
		return err
	}

	summary := stats.Compute(list)
	summary.ApplyRemoval(doomed.Status)

	fmt.Fprintf(cli.out, "Complaint %s deleted.\n", shortID(doomed.ID))
	cli.renderSummary(summary)
	return nil
}

func (cli *CLI) adminStudents(ctx context.Context) error {
	if _, err := cli.requireAdmin(); err != nil {
		return err
	}

	users, err := cli.users.ListAllUsers(ctx)
	if err != nil {
		return err
	}
	cli.renderUserTable(users)
	return nil
}

func (cli *CLI) adminRemoveUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin rmuser", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	if _, err := cli.requireAdmin(); err != nil {
		return err
	}

	if err := cli.users.DeleteUser(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Student removed.")
	return nil
}

func findComplaint(list []domain.Complaint, id string) (*domain.Complaint, error) {
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrComplaintNotFound
}
