package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hrtrack/internal/app"
	"hrtrack/internal/domain"
	"hrtrack/internal/logging"
	"hrtrack/internal/present"
	"hrtrack/internal/state"
)

var (
	envFile    string
	apiURL     string
	home       string
	passphrase string
	logLevel   string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "hrtrack",
		Short:         "Track candidates, vacancies and interviews from the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.APIURL = apiURL
			}
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
			w, err := app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			appCtx = app.New(w)
			logger.Debug("configured", "api", w.Config.APIURL, "home", cfg.Home)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "optional file of HRTRACK_* variables")
	pf.StringVar(&apiURL, "api", "", "backend base URL (default from profile or "+app.DefaultAPIURL+")")
	pf.StringVar(&home, "home", "", "config dir (default ~/.hrtrack)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		candidatesCmd(), vacanciesCmd(), interviewsCmd(), tracksCmd(),
		staffCmd(), tagsCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		present.Failure(os.Stderr, err)
		return err
	}
	return nil
}

// signedIn restores the stored session before a command talks to the
// backend.
func signedIn(cmd *cobra.Command, args []string) error {
	_, err := restore()
	return err
}

func restore() (domain.Session, error) {
	if err := needPassphrase(); err != nil {
		return domain.Session{}, err
	}
	return appCtx.Restore()
}

func needPassphrase() error {
	if appCtx.Config.Passphrase == "" {
		return fmt.Errorf("%w: passphrase required (-p or HRTRACK_PASSPHRASE)", domain.ErrInvalidArgument)
	}
	return nil
}

// inScope runs fn with a screen scope tied to the command's context.
func inScope(cmd *cobra.Command, fn func(ctx context.Context, scope *state.Scope) error) error {
	scope := state.NewScope(cmd.Context())
	defer scope.Close()
	return fn(cmd.Context(), scope)
}

func parseID(kind, s string) (domain.ID, error) {
	id, err := domain.ParseID(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad %s id %q", domain.ErrInvalidArgument, kind, s)
	}
	return id, nil
}

func toIDs(raw []int64) []domain.ID {
	out := make([]domain.ID, 0, len(raw))
	for _, n := range raw {
		out = append(out, domain.ID(n))
	}
	return out
}

// parseTime accepts RFC 3339 or a plain date in local time.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: bad time %q (want RFC 3339 or YYYY-MM-DD)", domain.ErrInvalidArgument, s)
}
