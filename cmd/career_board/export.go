package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-board/internal/export"
	"github.com/jonathan/career-board/internal/types"
	"github.com/spf13/cobra"
)

type board struct {
	jobs       []types.JobPosting
	interviews []types.InterviewExperience
}

func newExportCmd(c *cli) *cobra.Command {
	var (
		out   string
		query string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the job and interview boards to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.requireSession(""); err != nil {
				return err
			}

			b, err := track(cmd, "Loading boards...", func(ctx context.Context) (board, error) {
				jobs, err := c.services.Jobs.List(ctx, query)
				if err != nil {
					return board{}, err
				}
				interviews, err := c.services.Interviews.List(ctx, query)
				if err != nil {
					return board{}, err
				}
				return board{jobs: jobs, interviews: interviews}, nil
			})
			if err != nil {
				return err
			}

			path, err := export.ExportBoard(b.jobs, b.interviews, out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d jobs and %d interview experiences to %s\n",
				len(b.jobs), len(b.interviews), path)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "career-board.xlsx", "Workbook path")
	flags.StringVarP(&query, "query", "q", "", "Only export rows matching this filter")
	return cmd
}
