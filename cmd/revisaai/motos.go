package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/provider"
	"github.com/revisaai/revisaai/internal/validate"
)

// ready fails with the message recorded by a provider whose load did not succeed.
func ready(name string, state provider.State, message string) error {
	if state == provider.StateError {
		return fmt.Errorf("load %s: %s", name, message)
	}
	return nil
}

// motoFlags holds the raw flag values of add and update.
type motoFlags struct {
	name, brand, model, year, plate, km, color, next string
}

func (f *motoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "nickname of the moto")
	cmd.Flags().StringVar(&f.brand, "brand", "", "brand, e.g. Honda")
	cmd.Flags().StringVar(&f.model, "model", "", "model, e.g. CG 160")
	cmd.Flags().StringVar(&f.year, "year", "", "model year, e.g. 2020")
	cmd.Flags().StringVar(&f.plate, "plate", "", "license plate")
	cmd.Flags().StringVar(&f.km, "km", "", `odometer, e.g. "20.500"`)
	cmd.Flags().StringVar(&f.color, "color", "", "color")
	cmd.Flags().StringVar(&f.next, "next-revision", "", "next revision date, YYYY-MM-DD")
}

// update returns an input holding only the flags given on the command line.
func (f *motoFlags) update(cmd *cobra.Command) (models.UpdateMotoInput, error) {
	var in models.UpdateMotoInput
	var errs []error
	set := cmd.Flags().Changed
	if set("name") {
		if f.name == "" {
			errs = append(errs, &models.ValidationError{Field: "name", Message: "must not be empty"})
		}
		in.Name = &f.name
	}
	if set("brand") {
		if f.brand == "" {
			errs = append(errs, &models.ValidationError{Field: "brand", Message: "must not be empty"})
		}
		in.Brand = &f.brand
	}
	if set("model") {
		in.Model = &f.model
	}
	if set("year") {
		y, err := validate.ParseYear(f.year)
		errs = append(errs, err)
		in.Year = &y
	}
	if set("plate") {
		in.Plate = &f.plate
	}
	if set("km") {
		km, err := validate.ParseKm(f.km)
		errs = append(errs, err)
		in.Km = &km
	}
	if set("color") {
		in.Color = &f.color
	}
	if set("next-revision") {
		errs = append(errs, validate.NotPast(f.next, time.Now()))
		in.NextRevisionDate = &f.next
	}
	return in, errors.Join(errs...)
}

func (f *motoFlags) create(cmd *cobra.Command) (models.CreateMotoInput, error) {
	u, err := f.update(cmd)
	if err != nil {
		return models.CreateMotoInput{}, err
	}
	in := models.CreateMotoInput{Name: f.name, Brand: f.brand, Model: f.model, Plate: f.plate, Color: f.color, NextRevisionDate: f.next}
	if u.Year != nil {
		in.Year = *u.Year
	}
	if u.Km != nil {
		in.Km = *u.Km
	}
	return in, validate.Struct(in)
}

func newMotosCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "motos",
		Aliases:           []string{"moto"},
		Short:             "Manage your motorcycles",
		PersistentPreRunE: c.setupLoggedIn,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your motorcycles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.app.Motos
			if err := ready("motos", p.State(), p.Message()); err != nil {
				return err
			}
			motos := p.Items()
			return c.emit(motos, func() { c.printMotos(motos) })
		},
	}

	var addFlags motoFlags
	add := &cobra.Command{
		Use:     "add",
		Short:   "Add a motorcycle",
		Example: `  revisaai motos add --name Biz --brand Honda --year 2020 --km 20.500`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := addFlags.create(cmd)
			if err != nil {
				return err
			}
			m, err := c.app.Motos.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.emit(m, func() { c.printf("Created moto %s (%s)\n", m.ID, m.Name) })
		},
	}
	addFlags.register(add)
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("brand")

	var updFlags motoFlags
	update := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change the given fields of a motorcycle",
		Example: `  revisaai motos update 2 --km 56.000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := updFlags.update(cmd)
			if err != nil {
				return err
			}
			m, err := c.app.Motos.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return c.emit(m, func() { c.printf("Updated moto %s (%s)\n", m.ID, m.Name) })
		},
	}
	updFlags.register(update)

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a motorcycle with its revisions and reminders",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveMoto(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.printf("Deleted moto %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, update, rm)
	return cmd
}

func (c *cli) printMotos(motos []models.Moto) {
	if len(motos) == 0 {
		c.printf("No motos yet. Add one with `revisaai motos add`.\n")
		return
	}
	rows := make([][]string, 0, len(motos))
	for _, m := range motos {
		year := "-"
		if m.Year > 0 {
			year = strconv.Itoa(m.Year)
		}
		rows = append(rows, []string{m.ID, m.Name, m.Brand, orDash(m.Model), year, formatKm(m.Km), formatDate(m.NextRevisionDate)})
	}
	c.table("ID\tNAME\tBRAND\tMODEL\tYEAR\tKM\tNEXT REVISION", rows)
	c.printf("Total: %d moto(s)\n", len(motos))
}
