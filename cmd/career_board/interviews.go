package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jonathan/career-board/internal/observability"
	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
	"github.com/spf13/cobra"
)

func newInterviewsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interviews",
		Short: "Browse and share interview experiences",
	}
	cmd.AddCommand(newInterviewsListCmd(c), newInterviewsShowCmd(c), newInterviewsShareCmd(c))
	return cmd
}

func newInterviewsListCmd(c *cli) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interview experiences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			experiences, err := track(cmd, "Loading interview experiences...", func(ctx context.Context) ([]types.InterviewExperience, error) {
				return c.services.Interviews.List(ctx, query)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), experiences)
			}
			return printInterviewTable(cmd.OutOrStdout(), experiences, query)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by company, position or experience text")
	return cmd
}

func printInterviewTable(w io.Writer, experiences []types.InterviewExperience, query string) error {
	if len(experiences) == 0 {
		if query != "" {
			_, err := fmt.Fprintf(w, "No interview experiences match %q\n", query)
			return err
		}
		_, err := fmt.Fprintln(w, "No interview experiences yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCOMPANY\tPOSITION\tDATE")
	for _, e := range experiences {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Company, e.Position, e.Date)
	}
	return tw.Flush()
}

func newInterviewsShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one interview experience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			experience, ok, err := c.services.Interviews.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("interview experience %d not found", id)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), experience)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintInterview(experience)
			return nil
		},
	}
}

func newInterviewsShareCmd(c *cli) *cobra.Command {
	var form validation.InterviewExperienceForm

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share your interview experience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			form, err := validation.Check(validation.InterviewExperienceSchema, form)
			if err != nil {
				return err
			}

			created, err := track(cmd, "Submitting...", func(ctx context.Context) (types.InterviewExperience, error) {
				return c.services.Interviews.Create(ctx, form.ToNewInterviewExperience())
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), created)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Your interview experience has been shared (id %d)\n", created.ID)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Company, "company", "", "Company name")
	flags.StringVar(&form.Position, "position", "", "Position interviewed for")
	flags.StringVar(&form.InterviewRounds, "rounds", "", "Number of interview rounds")
	flags.StringVar(&form.TechnicalQuestions, "technical", "", "Technical questions asked")
	flags.StringVar(&form.SystemDesign, "system-design", "", "System design questions (optional)")
	flags.StringVar(&form.BehavioralQuestions, "behavioral", "", "Behavioral questions asked")
	flags.StringVar(&form.OverallExperience, "overall", "", "Overall experience")
	return cmd
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
