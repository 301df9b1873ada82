package main

import (
	"fmt"

	"github.com/jonathan/career-board/internal/types"
	"github.com/jonathan/career-board/internal/validation"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var form validation.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a student",
		Long:  "Sign in with any email and password. Credentials are not checked and the session always starts with the student role.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := validation.Check(validation.AuthSchema, form)
			if err != nil {
				return err
			}
			user, err := c.services.Auth.Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				return err
			}
			return c.printUser(cmd, "Signed in", user)
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (not verified)")
	return cmd
}

func newSignupCmd(c *cli) *cobra.Command {
	var form validation.SignupForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := validation.Check(validation.AuthSchema, form)
			if err != nil {
				return err
			}
			user, err := c.services.Auth.Signup(cmd.Context(), form.Email, form.Password, types.Role(form.Role))
			if err != nil {
				return err
			}
			return c.printUser(cmd, "Account created", user)
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (not verified)")
	cmd.Flags().StringVar(&form.Role, "role", string(types.RoleStudent), "Role: student or admin")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.services.Auth.Logout(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newRoleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "role <student|admin>",
		Short:     "Switch the role of the current session",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(types.RoleStudent), string(types.RoleAdmin)},
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := validation.Check(validation.AuthSchema, validation.RoleForm{Role: args[0]})
			if err != nil {
				return err
			}
			user, ok, err := c.services.Auth.SetRole(types.Role(form.Role))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in, nothing to change")
				return nil
			}
			return c.printUser(cmd, "Role updated", user)
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := c.services.Auth.Current()
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			return c.printUser(cmd, "Signed in", user)
		},
	}
}

func (c *cli) printUser(cmd *cobra.Command, verb string, user types.User) error {
	if c.jsonOutput {
		return printJSON(cmd.OutOrStdout(), user)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s as %s (%s)\n", verb, user.Email, user.Role)
	return err
}
