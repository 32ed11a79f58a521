package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/community-records/internal/store"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Password string
	Email    string
	FullName string
	Phone    string
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new user account",
		Long: `Create a new account with the user role. Usernames and email addresses
are unique regardless of case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			created, err := rt.accounts.Register(store.RegisterInput{
				Username: args[0],
				Password: opts.Password,
				Email:    opts.Email,
				FullName: opts.FullName,
				Phone:    opts.Phone,
			})
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (id %d)\n", created.Username, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "account password (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&opts.FullName, "full-name", "", "full name (required)")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}
