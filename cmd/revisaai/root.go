package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/revisaai/revisaai/internal/config"
	"github.com/revisaai/revisaai/internal/gateway"
	"github.com/revisaai/revisaai/internal/provider"
	"github.com/revisaai/revisaai/internal/remote"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/pkg/logger"
)

// cli is the state shared by every command of one invocation.
type cli struct {
	out io.Writer

	apiURL    string
	sessionDB string
	logLevel  string
	json      bool

	cfg     *config.Config
	app     *provider.App
	closers []func() error
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "revisaai",
		Short: "RevisaAí keeps track of your motorcycles and their revisions",
		Long: `RevisaAí keeps track of your motorcycles, their scheduled revisions and the
reminders created for them.

Without API_URL (or --api-url) every command runs against the built-in demo
data; changes made in that mode last for the current invocation only.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "backend base URL (default: API_URL, empty for mock mode)")
	root.PersistentFlags().StringVar(&c.sessionDB, "session-db", "", "session database file (default: SESSION_DB_PATH)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (default: LOG_LEVEL)")
	root.PersistentFlags().BoolVar(&c.json, "json", false, "print results as JSON")

	root.AddCommand(
		newLoginCmd(c),
		newRegisterCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newProfileCmd(c),
		newMotosCmd(c),
		newRevisionsCmd(c),
		newNotificationsCmd(c),
		newWorkshopsCmd(c),
	)
	return root
}

// execute runs one invocation and releases what setup opened, whether or not the command failed.
func execute(c *cli, args []string) error {
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(c.out)
	err := root.Execute()
	return errors.Join(err, c.close())
}

// setup loads the configuration, builds the data layer and restores the saved session.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = c.apiURL
	}
	if c.sessionDB != "" {
		cfg.Session.Path = c.sessionDB
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	c.cfg = cfg

	logger.Init(cfg.LogLevel)
	logger.SetConsole(os.Stderr)

	stores, err := store.NewMemorySet(store.WithLatency(cfg.API.MockLatency))
	if err != nil {
		return fmt.Errorf("build stores: %w", err)
	}
	var rc *remote.Client
	if !cfg.MockOnly() {
		rc = remote.NewClient(cfg.API.BaseURL)
	}
	gw := gateway.New(rc, stores)
	if gw.MockOnly() {
		logger.Debug("no API_URL configured, using mock data")
	}

	slot, err := c.openSlot(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.app = provider.NewApp(gw, slot)

	if _, err := c.app.Restore(cmd.Context()); err != nil {
		// Providers that failed to load report it themselves when used.
		if !provider.IsLoadError(err) {
			err = fmt.Errorf("restore session: %w", err)
		}
		logger.Warnf("%v", err)
	}
	return nil
}

func (c *cli) openSlot(ctx context.Context, cfg *config.Config) (session.Slot, error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis at %s: %w", cfg.Redis.Addr(), err)
		}
		c.closers = append(c.closers, client.Close)
		return session.NewRedisSlot(client, cfg.Session.Key), nil
	case "", "sqlite":
		slot, err := session.NewSQLiteSlot(cfg.Session.Path, cfg.Session.Key)
		if err != nil {
			return nil, fmt.Errorf("open session db %s: %w", cfg.Session.Path, err)
		}
		c.closers = append(c.closers, slot.Close)
		return slot, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (c *cli) close() error {
	var errs []error
	for _, fn := range c.closers {
		errs = append(errs, fn())
	}
	c.closers = nil
	return errors.Join(errs...)
}

var errNotLoggedIn = errors.New("not logged in; run `revisaai login` first")

// setupLoggedIn is setup for the commands that act on the user's data.
func (c *cli) setupLoggedIn(cmd *cobra.Command, args []string) error {
	if err := c.setup(cmd, args); err != nil {
		return err
	}
	return c.requireLogin()
}

// requireLogin fails when no session was restored.
func (c *cli) requireLogin() error {
	if !c.app.Auth.IsLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}
