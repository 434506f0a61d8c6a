package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/models"
)

func newWorkshopsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "workshops [query]",
		Aliases: []string{"workshop", "oficinas"},
		Short:   "Search the workshop directory by name, neighborhood or service",
		Example: `  revisaai workshops
  revisaai workshops freio`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.app.Workshops.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.emit(ws, func() { c.printWorkshops(ws) })
		},
	}
}

func (c *cli) printWorkshops(ws []models.Workshop) {
	if len(ws) == 0 {
		c.printf("No workshops found.\n")
		return
	}
	rows := make([][]string, 0, len(ws))
	for _, w := range ws {
		rows = append(rows, []string{w.Name, w.Neighborhood, w.Address, strings.Join(w.Services, ", ")})
	}
	c.table("NAME\tNEIGHBORHOOD\tADDRESS\tSERVICES", rows)
}
