package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/validate"
)

// schedule turns the date and clock typed by the user into the ISO-8601 date
// and time of a revision. The date must not be in the past.
func schedule(date, clock string, now time.Time) (string, string, error) {
	if err := validate.NotPast(date, now); err != nil {
		return "", "", err
	}
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return "", "", &models.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, now.Location())
	if err != nil {
		return "", "", &models.ValidationError{Field: "time", Message: "must be HH:MM"}
	}
	return day.Format(time.RFC3339), at.Format(time.RFC3339), nil
}

func newRevisionsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "revisions",
		Aliases:           []string{"revision", "rev"},
		Short:             "Schedule and track revisions",
		PersistentPreRunE: c.setupLoggedIn,
	}

	var motoID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.app.Revisions
			if err := ready("revisions", p.State(), p.Message()); err != nil {
				return err
			}
			revs := p.Items()
			if motoID != "" {
				revs = p.ByMoto(motoID)
			}
			return c.emit(revs, func() { c.printRevisions(revs) })
		},
	}
	list.Flags().StringVar(&motoID, "moto", "", "only revisions of this moto id")

	var (
		in    models.CreateRevisionInput
		date  string
		clock string
		km    string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Schedule a revision and its reminder",
		Example: `  revisaai revisions add --moto 2 --title "Troca de óleo" --service "Óleo e filtro" \
    --date 2030-03-15 --time 09:30 --km 56.000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := c.app.Motos.Get(in.MotoID); !ok {
				return &models.NotFoundError{Resource: "moto", ID: in.MotoID}
			}
			var errs []error
			var err error
			in.Date, in.Time, err = schedule(date, clock, time.Now())
			errs = append(errs, err)
			if km != "" {
				in.Km, err = validate.ParseKm(km)
				errs = append(errs, err)
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
			if err := validate.Struct(in); err != nil {
				return err
			}
			r, n, err := c.app.AddRevision(cmd.Context(), in)
			if err != nil && r.ID == "" {
				return err
			}
			out := struct {
				Revision     models.Revision      `json:"revision"`
				Notification *models.Notification `json:"notification,omitempty"`
			}{Revision: r}
			if err == nil {
				out.Notification = &n
			}
			if emitErr := c.emit(out, func() {
				c.printf("Scheduled revision %s (%s) on %s at %s\n", r.ID, r.Title, formatDate(r.Date), formatTime(r.Time))
			}); emitErr != nil {
				return emitErr
			}
			if err != nil {
				return fmt.Errorf("revision saved but its reminder was not: %w", err)
			}
			return nil
		},
	}
	add.Flags().StringVar(&in.MotoID, "moto", "", "moto id (required)")
	add.Flags().StringVar(&in.Title, "title", "", "title (required)")
	add.Flags().StringVar(&in.Service, "service", "", "service to be done (required)")
	add.Flags().StringVar(&in.Details, "details", "", "free text notes")
	add.Flags().StringVar(&date, "date", "", "day, YYYY-MM-DD (required)")
	add.Flags().StringVar(&clock, "time", "", "time of day, HH:MM (required)")
	add.Flags().StringVar(&km, "km", "", `odometer at the revision, e.g. "56.000"`)
	add.Flags().BoolVar(&in.AutoReminderEnabled, "auto-reminder", false, "remind again automatically")
	add.Flags().StringVar(&in.AutoReminderInterval, "interval", "", "auto reminder interval, e.g. 6m")
	for _, f := range []string{"moto", "title", "service", "date", "time"} {
		_ = add.MarkFlagRequired(f)
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a revision and its reminders as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.app.MarkRevisionDone(cmd.Context(), args[0])
			if err != nil && r.ID == "" {
				return err
			}
			if emitErr := c.emit(r, func() { c.printf("Revision %s marked as done\n", r.ID) }); emitErr != nil {
				return emitErr
			}
			return err
		},
	}

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a revision with its reminders",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveRevision(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.printf("Deleted revision %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, done, rm)
	return cmd
}

func (c *cli) printRevisions(revs []models.Revision) {
	if len(revs) == 0 {
		c.printf("No revisions found.\n")
		return
	}
	rows := make([][]string, 0, len(revs))
	for _, r := range revs {
		moto := r.MotoID
		if m, ok := c.app.Motos.Get(r.MotoID); ok {
			moto = m.Name
		}
		rows = append(rows, []string{r.ID, moto, r.Title, r.Service, formatDate(r.Date), formatTime(r.Time), formatKm(r.Km), string(r.Status)})
	}
	c.table("ID\tMOTO\tTITLE\tSERVICE\tDATE\tTIME\tKM\tSTATUS", rows)
	c.printf("Total: %d revision(s)\n", len(revs))
}
