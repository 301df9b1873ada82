package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/career-board/internal/app"
	"github.com/jonathan/career-board/internal/config"
	"github.com/jonathan/career-board/internal/submission"
	"github.com/jonathan/career-board/internal/types"
	"github.com/spf13/cobra"
)

// cli carries the global flags and the services built from them.
type cli struct {
	configPath string
	sessionDir string
	noLatency  bool
	jsonOutput bool

	cfg      config.Config
	services *app.Services

	// extra is appended to the app options; tests use it to inject fakes.
	extra []app.Option
}

func newRootCmd(extra ...app.Option) *cobra.Command {
	c := &cli{extra: extra}

	root := &cobra.Command{
		Use:           "career_board",
		Short:         "Interview experiences, job postings and skill gap analysis",
		Long:          "Career Board hosts a community board of interview experiences, a job board with applications, and an AI skill gap analyzer, as a REST API or from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.services == nil {
				return nil
			}
			return c.services.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Path to a JSON config file")
	flags.StringVar(&c.sessionDir, "session-dir", "", "Directory holding the persisted session (overrides SESSION_DIR)")
	flags.BoolVar(&c.noLatency, "no-latency", false, "Skip the simulated network delays")
	flags.BoolVar(&c.jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		newServeCmd(c),
		newLoginCmd(c),
		newSignupCmd(c),
		newLogoutCmd(c),
		newRoleCmd(c),
		newWhoamiCmd(c),
		newInterviewsCmd(c),
		newJobsCmd(c),
		newSkillGapCmd(c),
		newExportCmd(c),
	)
	return root
}

// setup loads configuration and builds the services. Every invocation starts
// from the seed collections; only the session carries over.
func (c *cli) setup(ctx context.Context) error {
	loaded, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	overrides := config.Config{SessionDir: c.sessionDir}
	if c.noLatency {
		disabled := false
		overrides.SimulatedLatency = &disabled
	}
	c.cfg = overrides.MergeWithDefaults(loaded)

	services, err := app.New(ctx, c.cfg, c.extra...)
	if err != nil {
		return err
	}
	c.services = services
	return nil
}

// requireSession mirrors the private routes: a signed-in user, and the given
// role when one is named.
func (c *cli) requireSession(role types.Role) (types.User, error) {
	user, ok := c.services.Auth.Current()
	if !ok {
		return types.User{}, fmt.Errorf("not signed in: run `career_board login` first")
	}
	if role != "" && user.Role != role {
		return types.User{}, fmt.Errorf("this page requires the %s role (signed in as %s)", role, user.Role)
	}
	return user, nil
}

// track runs fn as a tracked request and reports progress on stderr.
func track[T any](cmd *cobra.Command, pending string, fn func(context.Context) (T, error)) (T, error) {
	tracker := submission.NewTracker[T]()
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), pending)

	if _, _, err := tracker.Run(cmd.Context(), fn); err != nil {
		var zero T
		return zero, err
	}
	return tracker.Snapshot().Value, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
