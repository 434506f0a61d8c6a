package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/models"
)

// target resolves the "<id> or --revision <revisionId>" form shared by done and rm.
func target(args []string, revisionID string) (string, error) {
	switch {
	case len(args) == 1 && revisionID == "":
		return args[0], nil
	case len(args) == 0 && revisionID != "":
		return "", nil
	default:
		return "", errors.New("give either a notification id or --revision, not both")
	}
}

func newNotificationsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "notifications",
		Aliases:           []string{"notification", "notif"},
		Short:             "Review the reminders of your revisions",
		PersistentPreRunE: c.setupLoggedIn,
	}

	var pending bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List reminders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.app.Notifications
			if err := ready("notifications", p.State(), p.Message()); err != nil {
				return err
			}
			items := p.Items()
			if pending {
				items = p.Pending()
			}
			return c.emit(items, func() { c.printNotifications(items) })
		},
	}
	list.Flags().BoolVar(&pending, "pending", false, "only pending reminders")

	var doneRevision string
	done := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a reminder, or every reminder of a revision, as done",
		Example: `  revisaai notifications done 3
  revisaai notifications done --revision 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := target(args, doneRevision)
			if err != nil {
				return err
			}
			if id == "" {
				if err := c.app.Notifications.SetStatusByRevision(cmd.Context(), doneRevision, models.StatusDone); err != nil {
					return err
				}
				c.printf("Reminders of revision %s marked as done\n", doneRevision)
				return nil
			}
			n, err := c.app.Notifications.SetStatus(cmd.Context(), id, models.StatusDone)
			if err != nil {
				return err
			}
			return c.emit(n, func() { c.printf("Reminder %s marked as done\n", n.ID) })
		},
	}
	done.Flags().StringVar(&doneRevision, "revision", "", "revision id whose reminders are updated")

	var rmRevision string
	rm := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a reminder, or every reminder of a revision",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := target(args, rmRevision)
			if err != nil {
				return err
			}
			if id == "" {
				if err := c.app.Notifications.RemoveByRevision(cmd.Context(), rmRevision); err != nil {
					return err
				}
				c.printf("Deleted reminders of revision %s\n", rmRevision)
				return nil
			}
			if err := c.app.Notifications.Remove(cmd.Context(), id); err != nil {
				return err
			}
			c.printf("Deleted reminder %s\n", id)
			return nil
		},
	}
	rm.Flags().StringVar(&rmRevision, "revision", "", "revision id whose reminders are deleted")

	cmd.AddCommand(list, done, rm)
	return cmd
}

func (c *cli) printNotifications(items []models.Notification) {
	if len(items) == 0 {
		c.printf("No reminders.\n")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, []string{n.ID, n.RevisionID, n.Title, n.Description, string(n.Status)})
	}
	c.table("ID\tREVISION\tTITLE\tDESCRIPTION\tSTATUS", rows)
	c.printf("Total: %d reminder(s)\n", len(items))
}
