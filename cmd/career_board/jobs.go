package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jonathan/career-board/internal/observability"
	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
	"github.com/spf13/cobra"
)

func newJobsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse, post and apply to jobs",
	}
	cmd.AddCommand(newJobsListCmd(c), newJobsShowCmd(c), newJobsPostCmd(c), newJobsApplyCmd(c))
	return cmd
}

func newJobsListCmd(c *cli) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			jobs, err := track(cmd, "Loading jobs...", func(ctx context.Context) ([]types.JobPosting, error) {
				return c.services.Jobs.List(ctx, query)
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), jobs)
			}
			return printJobTable(cmd.OutOrStdout(), jobs, query)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by company, position, location or description")
	return cmd
}

func printJobTable(w io.Writer, jobs []types.JobPosting, query string) error {
	if len(jobs) == 0 {
		if query != "" {
			_, err := fmt.Fprintf(w, "No jobs match %q\n", query)
			return err
		}
		_, err := fmt.Fprintln(w, "No jobs posted yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCOMPANY\tPOSITION\tLOCATION\tPOSTED")
	for _, j := range jobs {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Company, j.Position, j.Location, j.PostedDate)
	}
	return tw.Flush()
}

func newJobsShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			job, ok, err := c.services.Jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("job %d not found", id)
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), job)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintJobPosting(job)
			return nil
		},
	}
}

func newJobsPostCmd(c *cli) *cobra.Command {
	var (
		form             validation.JobPostingForm
		requirementsFile string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a job posting (admin)",
		Long:  "Publish a job posting. Requirements are one per line; pass them with --requirements or --requirements-file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(types.RoleAdmin); err != nil {
				return err
			}
			if requirementsFile != "" {
				data, err := os.ReadFile(requirementsFile)
				if err != nil {
					return fmt.Errorf("failed to read requirements file: %w", err)
				}
				form.Requirements = string(data)
			}
			form, err := validation.Check(validation.JobPostingSchema, form)
			if err != nil {
				return err
			}

			created, err := track(cmd, "Creating...", func(ctx context.Context) (types.JobPosting, error) {
				return c.services.Jobs.Create(ctx, form.ToNewJobPosting())
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), created)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Job posting created (id %d)\n", created.ID)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Company, "company", "", "Company name")
	flags.StringVar(&form.Position, "position", "", "Position title")
	flags.StringVar(&form.Location, "location", "", "Location")
	flags.StringVar(&form.Description, "description", "", "Job description")
	flags.StringVar(&form.Requirements, "requirements", "", "Requirements, one per line")
	flags.StringVar(&requirementsFile, "requirements-file", "", "Read requirements from a file, one per line")
	flags.StringVar(&form.Salary, "salary", "", "Salary range (optional)")
	flags.StringVar(&form.ApplicationURL, "url", "", "External application URL (optional)")
	return cmd
}

func newJobsApplyCmd(c *cli) *cobra.Command {
	var (
		form       validation.JobApplicationForm
		resumeFile string
	)

	cmd := &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply to a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if resumeFile != "" {
				data, err := os.ReadFile(resumeFile)
				if err != nil {
					return fmt.Errorf("failed to read resume file: %w", err)
				}
				form.Resume = string(data)
			}
			form, err := validation.Check(validation.JobApplicationSchema, form)
			if err != nil {
				return err
			}

			result, err := track(cmd, "Submitting...", func(ctx context.Context) (types.ApplyResult, error) {
				return c.services.Jobs.Apply(ctx, id, form.ToJobApplication())
			})
			if err != nil {
				return err
			}
			if c.jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			if !result.Success {
				return fmt.Errorf("application not submitted: %s", result.Message)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Name, "name", "", "Full name")
	flags.StringVar(&form.Email, "email", "", "Email address")
	flags.StringVar(&form.Resume, "resume", "", "Resume text")
	flags.StringVar(&resumeFile, "resume-file", "", "Read the resume from a file")
	flags.StringVar(&form.CoverLetter, "cover-letter", "", "Cover letter (optional)")
	return cmd
}
