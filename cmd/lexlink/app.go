package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lexlink/lexlink-cli/api"
	"github.com/lexlink/lexlink-cli/internal/config"
	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/session"
	sessionrepo "github.com/lexlink/lexlink-cli/session/filerepo"
	tokenrepo "github.com/lexlink/lexlink-cli/token/filerepo"
)

// app wires configuration, storage, the API client, and the session store
// for one command invocation.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	client *api.Client
	store  *session.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	tokens, err := tokenrepo.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	sessions, err := sessionrepo.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	client, err := api.New(cfg.APIURL, tokens,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
		api.WithSessionExpiredHook(func() {
			fmt.Fprintln(os.Stderr, warnStyle.Render("Session expired. Run `lexlink login` to sign in again."))
		}),
	)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(sessions, tokens, client, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, client: client, store: store}, nil
}

// requireAuth guards commands that need a logged-in user.
func (a *app) requireAuth() (*model.User, error) {
	if !a.store.IsAuthenticated() {
		return nil, errors.Wrapf(errors.ErrNotAuthenticated, "run `lexlink login` first")
	}
	return a.store.CurrentUser(), nil
}

// requireRole guards commands restricted to one role.
func (a *app) requireRole(role model.Role) (*model.User, error) {
	user, err := a.requireAuth()
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, errors.Wrapf(errors.ErrForbidden, "this command needs the %s role, you are logged in as a %s", role, user.Role)
	}
	return user, nil
}
