package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/provider"
	"github.com/revisaai/revisaai/internal/validate"
	"github.com/revisaai/revisaai/pkg/logger"
)

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Log in and keep the session for the next commands",
		Example: `  revisaai login --email ricardo@gmail.com --password 1234`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Email(email); err != nil {
				return err
			}
			if password == "" {
				return &models.ValidationError{Field: "password", Message: "is required"}
			}
			u, err := c.app.Login(cmd.Context(), models.LoginInput{Email: email, Password: password})
			if err := c.loggedInDespite(err); err != nil {
				return err
			}
			return c.emit(u, func() { c.printf("Logged in as %s <%s>\n", u.Name, u.Email) })
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(c *cli) *cobra.Command {
	var in models.RegisterInput
	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account and log in",
		Example: `  revisaai register --name "Ana Souza" --email ana@example.com --password segredo`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Normalize()
			if err := errors.Join(validate.Name(in.Name), validate.Email(in.Email), validate.Password(in.Password)); err != nil {
				return err
			}
			u, err := c.app.Register(cmd.Context(), in)
			if err := c.loggedInDespite(err); err != nil {
				return err
			}
			return c.emit(u, func() { c.printf("Welcome, %s! Your account id is %s\n", u.Name, u.ID) })
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (required)")
	for _, f := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

// loggedInDespite reports err unless the login itself went through and only
// the initial load of the lists failed, which is logged instead.
func (c *cli) loggedInDespite(err error) error {
	if err == nil || !provider.IsLoadError(err) {
		return err
	}
	logger.Warnf("%v", err)
	return nil
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Logout(cmd.Context()); err != nil {
				return err
			}
			c.printf("Logged out\n")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := c.app.Auth.User()
			if !ok {
				return errNotLoggedIn
			}
			return c.emit(u, func() {
				c.printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
				if u.AvatarURL != "" {
					c.printf("avatar: %s\n", u.AvatarURL)
				}
			})
		},
	}
}

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update or delete your account",
	}

	var name, email, password, avatar string
	update := &cobra.Command{
		Use:     "update",
		Short:   "Change profile fields; only the given flags are updated",
		Example: `  revisaai profile update --name "Ricardo Lima"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}
			var in models.UpdateProfileInput
			var errs []error
			if cmd.Flags().Changed("name") {
				errs = append(errs, validate.Name(name))
				in.Name = &name
			}
			if cmd.Flags().Changed("email") {
				email = models.NormalizeEmail(email)
				errs = append(errs, validate.Email(email))
				in.Email = &email
			}
			if cmd.Flags().Changed("password") {
				errs = append(errs, validate.Password(password))
				in.Password = &password
			}
			if cmd.Flags().Changed("avatar-url") {
				in.AvatarURL = &avatar
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
			u, err := c.app.Auth.UpdateProfile(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.emit(u, func() { c.printf("Profile updated: %s <%s>\n", u.Name, u.Email) })
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&email, "email", "", "new email")
	update.Flags().StringVar(&password, "password", "", "new password")
	update.Flags().StringVar(&avatar, "avatar-url", "", "new avatar URL")

	var yes bool
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account and log out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(); err != nil {
				return err
			}
			if !yes {
				return errors.New("refusing to delete the account without --yes")
			}
			if err := c.app.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			c.printf("Account deleted\n")
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	cmd.AddCommand(update, del)
	return cmd
}
