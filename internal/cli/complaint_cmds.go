package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/tracklyy/helpdesk-client/internal/core/assistant"
	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
	"github.com/tracklyy/helpdesk-client/internal/core/stats"
)

func (cli *CLI) submit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	title := fs.String("title", "", "short summary")
	desc := fs.String("desc", "", "what happened")
	category := fs.String("category", string(domain.CategoryAcademic), "Academic, Infrastructure, Hostel or Other")
	urgency := fs.String("urgency", string(domain.UrgencyMedium), "Low, Medium or High")
	assist := fs.Bool("assist", false, "let the assistant suggest title, category and urgency from the description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	identity, err := cli.requireIdentity()
	if err != nil {
		return err
	}
	if *desc == "" {
		if *assist {
			return errors.New("please enter a description first so the assistant can analyze it")
		}
		fs.Usage()
		return errHelp
	}

	input := ports.SubmitComplaintInput{
		OwnerID:     identity.ID,
		Title:       *title,
		Description: *desc,
		Type:        domain.Category(*category),
		Urgency:     domain.Urgency(*urgency),
	}
	if *assist {
		draft := assistant.SuggestDraft(*desc)
		input.Title = draft.Title
		input.Type = draft.Category
		input.Urgency = draft.Urgency
		fmt.Fprintf(cli.out, "✨ Assistant draft: %s [%s, %s urgency]\n", draft.Title, draft.Category, draft.Urgency)
	}

	created, err := cli.complaints.Submit(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Complaint submitted successfully! 🚀 Ticket %s is now %s.\n", shortID(created.ID), created.Status)
	return nil
}

func (cli *CLI) history(ctx context.Context) error {
	identity, err := cli.requireIdentity()
	if err != nil {
		return err
	}

	list, err := cli.complaints.ListMine(ctx, identity.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cli.out, "No complaints yet. File one with 'helpdesk submit'.")
		return nil
	}

	cli.renderComplaintTable(list, false)
	return nil
}

func (cli *CLI) detail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("detail", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	id := fs.String("id", "", "complaint id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}

	identity, err := cli.requireIdentity()
	if err != nil {
		return err
	}

	c, err := cli.complaints.Get(ctx, identity.ID, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Ticket #%s • %s\n", shortID(c.ID), c.Status)
	fmt.Fprintf(cli.out, "%s\n", c.Title)
	fmt.Fprintf(cli.out, "Category: %s   Urgency: %s   Filed: %s\n", c.Type, c.Urgency, c.CreatedAt.Format("02 Jan 2006 15:04"))
	fmt.Fprintf(cli.out, "\n%s\n", c.Description)
	if c.ResolutionNote != "" {
		fmt.Fprintf(cli.out, "\nResolution note: %s\n", c.ResolutionNote)
	}
	if c.AdminFeedback != "" {
		fmt.Fprintf(cli.out, "Admin feedback: %s\n", c.AdminFeedback)
	}

	fmt.Fprintln(cli.out)
	for _, line := range assistant.TicketBriefing(identity, c) {
		fmt.Fprintf(cli.out, "  %s\n", line)
	}
	return nil
}

func (cli *CLI) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	watch := fs.Duration("watch", 0, "refresh interval, e.g. 30s; 0 renders once")
	if err := fs.Parse(args); err != nil {
		return err
	}

	identity, err := cli.requireIdentity()
	if err != nil {
		return err
	}

	if err := cli.renderDashboard(ctx, identity); err != nil {
		return err
	}
	if *watch <= 0 {
		return nil
	}

	// Display refresh only; each tick refetches and recomputes from scratch.
	ticker := time.NewTicker(*watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := cli.renderDashboard(ctx, identity); err != nil {
				return err
			}
		}
	}
}

func (cli *CLI) renderDashboard(ctx context.Context, identity *domain.Identity) error {
	var (
		list []domain.Complaint
		err  error
	)
	if identity.IsAdmin() {
		list, err = cli.complaints.ListAll(ctx)
	} else {
		list, err = cli.complaints.ListMine(ctx, identity.ID)
	}
	if err != nil {
		return err
	}

	summary := stats.Compute(list)
	fmt.Fprintf(cli.out, "Welcome back, %s\n", identity.FirstName())
	cli.renderSummary(summary)
	return nil
}

func (cli *CLI) campusStats(ctx context.Context) error {
	s, err := cli.campus.CampusStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Campus: %d complaints, %d resolved, %d registered students\n",
		s.TotalComplaints, s.ResolvedComplaints, s.RegisteredStudents)
	return nil
}
