package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/community-records/internal/store"
)

// NewUsersCommand creates the users command group (admin only).
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and inspect accounts (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			users, err := rt.accounts.AllUsers()
			if err != nil {
				return friendlyError(err)
			}
			return writeUsers(cmd.OutOrStdout(), rootOpts.Format, users)
		},
	}

	cmd.AddCommand(NewUsersShowCommand(rootOpts))

	return cmd
}

// NewUsersShowCommand creates the users show command (admin only).
func NewUsersShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <username>",
		Short: "Show one account by username (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			user, err := rt.accounts.UserByUsername(args[0])
			if err != nil {
				return friendlyError(err)
			}
			return writeUser(cmd.OutOrStdout(), rootOpts.Format, user)
		},
	}
}

// ProfileOptions holds flags for the profile command.
type ProfileOptions struct {
	*RootOptions
	ID       int
	FullName string
	Email    string
	Phone    string
}

// NewProfileCommand creates the profile command. Without flags it shows the
// profile; with any field flag set it applies a patch.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update a profile",
		Long: `Show or update an account profile. Defaults to the logged-in account;
administrators can address another account with --id. Only the full name,
email and phone fields can change here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			session, err := requireSession(rt.accounts)
			if err != nil {
				return err
			}

			id := session.ID
			if cmd.Flags().Changed("id") {
				id = opts.ID
			}

			patch := store.ProfilePatch{}
			if cmd.Flags().Changed("full-name") {
				patch.FullName = &opts.FullName
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &opts.Email
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = &opts.Phone
			}

			if patch.FullName == nil && patch.Email == nil && patch.Phone == nil {
				profile, err := rt.accounts.Profile(id)
				if err != nil {
					return friendlyError(err)
				}
				return writeUser(cmd.OutOrStdout(), opts.Format, profile)
			}

			updated, err := rt.accounts.UpdateProfile(id, patch)
			if err != nil {
				return friendlyError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated profile of %s\n", updated.Username)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.ID, "id", 0, "account id (admin)")
	cmd.Flags().StringVar(&opts.FullName, "full-name", "", "new full name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "new email address")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "new phone number (empty clears it)")

	return cmd
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show account statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			return writeStats(cmd.OutOrStdout(), rootOpts.Format, rt.accounts.Stats())
		},
	}
}
