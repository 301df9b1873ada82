package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/career-board/internal/observability"
	"github.com/jonathan/career-board/internal/skillgap"
	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
	"github.com/spf13/cobra"
)

func newSkillGapCmd(c *cli) *cobra.Command {
	var (
		form       validation.SkillGapForm
		resumeFile string
		jobID      int
	)

	cmd := &cobra.Command{
		Use:   "skill-gap",
		Short: "Compare your resume with a target role",
		Long:  "Ask the AI skill gap analyzer which skills you have, which you are missing, and how to close the gap. Target a role with --role or a posted job with --job.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}
			if resumeFile != "" {
				data, err := os.ReadFile(resumeFile)
				if err != nil {
					return fmt.Errorf("failed to read resume file: %w", err)
				}
				form.Resume = string(data)
			}
			if jobID != 0 {
				job, ok, err := c.services.Jobs.Get(cmd.Context(), jobID)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("job %d not found", jobID)
				}
				form.JobRole = job.Position
			}

			form, err := validation.Check(validation.SkillGapSchema, form)
			if err != nil {
				return err
			}
			analyzer, err := c.services.SkillGap()
			if err != nil {
				return err
			}

			result, err := track(cmd, "Analyzing...", func(ctx context.Context) (*types.SkillGapResult, error) {
				return analyzer.Analyze(ctx, form.Resume, form.JobRole)
			})
			if errors.Is(err, skillgap.ErrAnalysisFailed) {
				return errors.New(skillgap.UserMessage)
			}
			if err != nil {
				return err
			}

			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), result)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSkillGap(form.JobRole, result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Resume, "resume", "", "Resume text or a list of skills")
	flags.StringVar(&resumeFile, "resume-file", "", "Read the resume from a file")
	flags.StringVar(&form.JobRole, "role", "", "Target job role")
	flags.IntVar(&jobID, "job", 0, "Use the position of this job posting as the target role")
	cmd.MarkFlagsMutuallyExclusive("role", "job")
	cmd.MarkFlagsMutuallyExclusive("resume", "resume-file")
	return cmd
}
