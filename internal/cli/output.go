package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/example/community-records/internal/store"
)

func formatFieldErrors(vErr *store.ValidationError) string {
	if vErr == nil || len(vErr.FieldErrors) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(vErr.FieldErrors))
	for field := range vErr.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", field, vErr.FieldErrors[field]))
	}
	return strings.Join(parts, ", ")
}

func writeJSON(w io.Writer, v any) error {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(blob))
	return err
}

func writeEvents(w io.Writer, format string, events []store.Event) error {
	if format == "json" {
		return writeJSON(w, events)
	}

	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "no events")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTITLE\tLOCATION\tCREATED BY")
	for _, event := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			event.ID, event.Date, event.Time, event.Title, event.Location, event.CreatedBy)
	}
	return tw.Flush()
}

func writeEvent(w io.Writer, format string, event store.Event) error {
	if format == "json" {
		return writeJSON(w, event)
	}

	fmt.Fprintf(w, "Event #%d\n", event.ID)
	fmt.Fprintf(w, "  Title:       %s\n", event.Title)
	fmt.Fprintf(w, "  Description: %s\n", event.Description)
	fmt.Fprintf(w, "  When:        %s %s\n", event.Date, event.Time)
	fmt.Fprintf(w, "  Location:    %s\n", event.Location)
	fmt.Fprintf(w, "  Created by:  %s at %s\n", event.CreatedBy, event.CreatedAt.Format("2006-01-02 15:04"))
	if event.UpdatedAt != nil {
		fmt.Fprintf(w, "  Updated at:  %s\n", event.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func writeUsers(w io.Writer, format string, users []store.PublicAccount) error {
	if format == "json" {
		return writeJSON(w, users)
	}

	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "no users")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tFULL NAME\tEMAIL\tROLE\tACTIVE")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n",
			user.ID, user.Username, user.FullName, user.Email, user.Role, user.IsActive)
	}
	return tw.Flush()
}

func writeUser(w io.Writer, format string, user store.PublicAccount) error {
	if format == "json" {
		return writeJSON(w, user)
	}

	fmt.Fprintf(w, "User #%d\n", user.ID)
	fmt.Fprintf(w, "  Username:  %s\n", user.Username)
	fmt.Fprintf(w, "  Full name: %s\n", user.FullName)
	fmt.Fprintf(w, "  Email:     %s\n", user.Email)
	if user.Phone != "" {
		fmt.Fprintf(w, "  Phone:     %s\n", user.Phone)
	}
	fmt.Fprintf(w, "  Role:      %s\n", user.Role)
	fmt.Fprintf(w, "  Active:    %t\n", user.IsActive)
	if user.LastLogin != nil {
		fmt.Fprintf(w, "  Last seen: %s\n", user.LastLogin.Format("2006-01-02 15:04"))
	}
	return nil
}

func writeSession(w io.Writer, format string, session store.Session) error {
	if format == "json" {
		return writeJSON(w, session)
	}

	fmt.Fprintf(w, "%s (%s), logged in since %s\n",
		session.Username, session.Role, session.LoginTime.Format("2006-01-02 15:04"))
	return nil
}

func writeStats(w io.Writer, format string, stats store.AccountStats) error {
	if format == "json" {
		return writeJSON(w, stats)
	}

	fmt.Fprintf(w, "Accounts:       %d\n", stats.Total)
	fmt.Fprintf(w, "  Active:       %d\n", stats.Active)
	fmt.Fprintf(w, "  Admins:       %d\n", stats.Admins)
	fmt.Fprintf(w, "  Regular:      %d\n", stats.Regular)
	fmt.Fprintf(w, "  New (7 days): %d\n", stats.NewWeek)
	return nil
}
