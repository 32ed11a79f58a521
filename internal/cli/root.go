// Package cli implements the records command tree. Commands are thin hosts
// around the record stores: they open the storage, run one store operation
// and render the result. All invariants live in internal/store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/community-records/internal/config"
	"github.com/example/community-records/internal/persistence"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json"
	Database string

	// Adapter overrides the SQLite-backed persistence adapter. Used by
	// tests to run commands against an in-memory adapter.
	Adapter persistence.Adapter
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the records CLI.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage community events and user accounts",
		Long: `records is a single-user tool for keeping a community event calendar
and its user accounts in a local SQLite file. Log in once; the session is
kept between invocations until you log out.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", cfg.SQLiteDSN, "SQLite database path or DSN")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewPasswdCommand(opts))
	cmd.AddCommand(NewEventCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
