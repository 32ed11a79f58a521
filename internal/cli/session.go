package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Password string
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate and start a session",
		Long: `Authenticate against the stored accounts. The session is persisted and
reused by later invocations until "records logout".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			session, err := rt.accounts.Authenticate(args[0], opts.Password)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", session.Username, session.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "account password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			// Logging out while logged out is fine.
			rt.accounts.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			session, err := requireSession(rt.accounts)
			if err != nil {
				return err
			}
			return writeSession(cmd.OutOrStdout(), rootOpts.Format, session)
		},
	}
}

// PasswdOptions holds flags for the passwd command.
type PasswdOptions struct {
	*RootOptions
	Current string
	New     string
}

// NewPasswdCommand creates the passwd command.
func NewPasswdCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PasswdOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the current account's password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			if _, err := requireSession(rt.accounts); err != nil {
				return err
			}
			if err := rt.accounts.ChangePassword(opts.Current, opts.New); err != nil {
				return friendlyError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Current, "current", "", "current password (required)")
	cmd.Flags().StringVar(&opts.New, "new", "", "new password (required)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}
