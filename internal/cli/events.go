package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/community-records/internal/store"
)

// NewEventCommand creates the event command group.
func NewEventCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage community events",
	}

	cmd.AddCommand(NewEventAddCommand(rootOpts))
	cmd.AddCommand(NewEventListCommand(rootOpts))
	cmd.AddCommand(NewEventShowCommand(rootOpts))
	cmd.AddCommand(NewEventUpdateCommand(rootOpts))
	cmd.AddCommand(NewEventDeleteCommand(rootOpts))

	return cmd
}

// EventFieldOptions holds the flags shared by event add and event update.
type EventFieldOptions struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
}

func addEventFieldFlags(cmd *cobra.Command, opts *EventFieldOptions) {
	cmd.Flags().StringVar(&opts.Title, "title", "", "event title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "event description")
	cmd.Flags().StringVar(&opts.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "event time (HH:MM)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "event location")
}

// NewEventAddCommand creates the event add command.
func NewEventAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EventFieldOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
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

			created, err := rt.events.Create(store.EventInput{
				Title:       opts.Title,
				Description: opts.Description,
				Date:        opts.Date,
				Time:        opts.Time,
				Location:    opts.Location,
			}, session.Username)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created event %d\n", created.ID)
			return nil
		},
	}

	addEventFieldFlags(cmd, opts)
	for _, flag := range []string{"title", "description", "date", "time", "location"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

// EventListOptions holds flags for the event list command.
type EventListOptions struct {
	*RootOptions
	Search  string
	From    string
	To      string
	Creator string
}

// NewEventListCommand creates the event list command.
func NewEventListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EventListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			var events []store.Event
			switch {
			case cmd.Flags().Changed("search"):
				events = rt.events.Search(opts.Search)
			case cmd.Flags().Changed("from") || cmd.Flags().Changed("to"):
				events = rt.events.ByDateRange(opts.From, opts.To)
			case cmd.Flags().Changed("creator"):
				events = rt.events.ByCreator(opts.Creator)
			default:
				events = rt.events.All()
			}

			return writeEvents(cmd.OutOrStdout(), opts.Format, events)
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "substring match over title and description")
	cmd.Flags().StringVar(&opts.From, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "9999-12-31", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Creator, "creator", "", "exact creator username")

	return cmd
}

// NewEventShowCommand creates the event show command.
func NewEventShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			event, err := rt.events.Get(id)
			if err != nil {
				return friendlyError(err)
			}
			return writeEvent(cmd.OutOrStdout(), rootOpts.Format, event)
		},
	}
}

// NewEventUpdateCommand creates the event update command. Flags that are not
// set keep the stored value; the store revalidates the merged record.
func NewEventUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EventFieldOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			if _, err := requireSession(rt.accounts); err != nil {
				return err
			}

			existing, err := rt.events.Get(id)
			if err != nil {
				return friendlyError(err)
			}

			input := store.EventInput{
				Title:       existing.Title,
				Description: existing.Description,
				Date:        existing.Date,
				Time:        existing.Time,
				Location:    existing.Location,
			}
			if cmd.Flags().Changed("title") {
				input.Title = opts.Title
			}
			if cmd.Flags().Changed("description") {
				input.Description = opts.Description
			}
			if cmd.Flags().Changed("date") {
				input.Date = opts.Date
			}
			if cmd.Flags().Changed("time") {
				input.Time = opts.Time
			}
			if cmd.Flags().Changed("location") {
				input.Location = opts.Location
			}

			updated, err := rt.events.Update(id, input)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated event %d\n", updated.ID)
			return nil
		},
	}

	addEventFieldFlags(cmd, opts)

	return cmd
}

// NewEventDeleteCommand creates the event delete command.
func NewEventDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			if _, err := requireSession(rt.accounts); err != nil {
				return err
			}

			removed, err := rt.events.Delete(id)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted event %d (%s)\n", removed.ID, removed.Title)
			return nil
		},
	}
}

func parseEventID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid event id %q", raw)
	}
	return id, nil
}
