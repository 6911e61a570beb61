package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token"
)

// ProfileFetcher is the slice of the API client CheckAuth depends on.
type ProfileFetcher interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
}

// Store is the single source of truth for the current session. Durable
// writes happen before the in-memory update on every transition, so a
// restart immediately after a transition observes the same state.
type Store struct {
	repo     Repo
	tokens   token.Repo
	profiles ProfileFetcher
	logger   zerolog.Logger

	lock      sync.RWMutex
	snap      Snapshot
	isLoading bool
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithLogger attaches a logger; transitions are logged at debug level.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore initializes a Store and rehydrates the persisted snapshot, so
// IsAuthenticated is answerable before any network call.
func NewStore(repo Repo, tokens token.Repo, profiles ProfileFetcher, options ...StoreOption) (*Store, error) {
	if repo == nil {
		return nil, errors.Wrapf(errors.ErrBadRequest, "[NewStore] session repo is required")
	}
	if tokens == nil {
		return nil, errors.Wrapf(errors.ErrBadRequest, "[NewStore] token repo is required")
	}
	if profiles == nil {
		return nil, errors.Wrapf(errors.ErrBadRequest, "[NewStore] profile fetcher is required")
	}

	store := &Store{
		repo:     repo,
		tokens:   tokens,
		profiles: profiles,
		logger:   zerolog.Nop(),
		snap:     anonymous(),
	}

	for _, opt := range options {
		opt(store)
	}

	if persisted, err := repo.Load(); err == nil && persisted != nil {
		store.snap = normalize(*persisted)
	}

	return store, nil
}

// normalize re-derives IsAuthenticated from the presence of user and
// tokens, so a hand-edited or partially written snapshot can never claim
// authentication it does not have.
func normalize(snap Snapshot) Snapshot {
	snap.IsAuthenticated = snap.User != nil && snap.Tokens != nil && snap.Tokens.Complete()
	if !snap.IsAuthenticated {
		return anonymous()
	}
	return snap
}

// SetAuth transitions to Authenticated after a successful login or
// registration. Tokens and snapshot are persisted before the in-memory
// state flips.
func (s *Store) SetAuth(user model.User, creds model.Credentials, lawyerProfile *model.LawyerProfile) error {
	if !creds.Complete() {
		return errors.ErrPartialCredentials
	}

	if err := s.tokens.Save(creds); err != nil {
		return errors.Wrapf(err, "[Store.SetAuth] persisting credentials")
	}

	snap := Snapshot{
		User:            &user,
		Tokens:          &creds,
		LawyerProfile:   lawyerProfile,
		IsAuthenticated: true,
	}
	if err := s.repo.Save(snap); err != nil {
		return errors.Wrapf(err, "[Store.SetAuth] persisting session")
	}

	s.lock.Lock()
	s.snap = snap
	s.lock.Unlock()

	s.logger.Debug().Str("user", user.ID).Str("role", string(user.Role)).Msg("session authenticated")
	return nil
}

// Logout transitions to Anonymous. Purely local: no network call is made.
func (s *Store) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return errors.Wrapf(err, "[Store.Logout] clearing credentials")
	}
	if err := s.repo.Clear(); err != nil {
		return errors.Wrapf(err, "[Store.Logout] clearing session")
	}

	s.lock.Lock()
	s.snap = anonymous()
	s.lock.Unlock()

	s.logger.Debug().Msg("session cleared")
	return nil
}

// CheckAuth revalidates the session against the backend, typically at
// startup. Success refreshes the cached user and lawyer profile; any
// failure drops to Anonymous and clears stored tokens. The loading flag is
// cleared on every path out.
func (s *Store) CheckAuth(ctx context.Context) error {
	s.lock.Lock()
	s.isLoading = true
	s.lock.Unlock()

	defer func() {
		s.lock.Lock()
		s.isLoading = false
		s.lock.Unlock()
	}()

	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		_ = s.tokens.Clear()
		_ = s.repo.Clear()

		s.lock.Lock()
		s.snap = anonymous()
		s.lock.Unlock()

		s.logger.Debug().Err(err).Msg("auth check failed, session dropped")
		return errors.Wrapf(err, "[Store.CheckAuth] profile fetch")
	}

	creds, err := s.tokens.Load()
	if err != nil || creds == nil {
		// Tokens vanished between the fetch and now; treat as logged out.
		_ = s.repo.Clear()
		s.lock.Lock()
		s.snap = anonymous()
		s.lock.Unlock()
		return errors.Wrapf(errors.ErrNotAuthenticated, "[Store.CheckAuth] credentials missing after profile fetch")
	}

	user := profile.User
	snap := Snapshot{
		User:            &user,
		Tokens:          creds,
		LawyerProfile:   profile.LawyerProfile,
		IsAuthenticated: true,
	}
	if err := s.repo.Save(snap); err != nil {
		return errors.Wrapf(err, "[Store.CheckAuth] persisting session")
	}

	s.lock.Lock()
	s.snap = snap
	s.lock.Unlock()

	s.logger.Debug().Str("user", user.ID).Msg("auth check succeeded")
	return nil
}

// UpdateUser merges the partial update into the current user. A no-op when
// nobody is logged in.
func (s *Store) UpdateUser(update model.UserUpdate) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.snap.User == nil {
		return nil
	}

	user := *s.snap.User
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}

	snap := s.snap
	snap.User = &user
	if err := s.repo.Save(snap); err != nil {
		return errors.Wrapf(err, "[Store.UpdateUser] persisting session")
	}
	s.snap = snap
	return nil
}

// SetLawyerProfile replaces the cached lawyer profile without touching
// user or tokens.
func (s *Store) SetLawyerProfile(profile *model.LawyerProfile) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	snap := s.snap
	snap.LawyerProfile = profile
	if err := s.repo.Save(snap); err != nil {
		return errors.Wrapf(err, "[Store.SetLawyerProfile] persisting session")
	}
	s.snap = snap
	return nil
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snap
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snap.IsAuthenticated
}

// IsLoading reports whether a CheckAuth is in flight.
func (s *Store) IsLoading() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.isLoading
}

// CurrentUser returns the logged-in user, or nil.
func (s *Store) CurrentUser() *model.User {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.snap.User == nil {
		return nil
	}
	user := *s.snap.User
	return &user
}
