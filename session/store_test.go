package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink-cli/internal/utils"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/session"
	sessionfake "github.com/lexlink/lexlink-cli/session/repofake"
	tokenfake "github.com/lexlink/lexlink-cli/token/repofake"
)

// fakeProfileFetcher scripts the /auth/me dependency.
type fakeProfileFetcher struct {
	profile *model.Profile
	err     error
	calls   int
}

func (f *fakeProfileFetcher) GetProfile(_ context.Context) (*model.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type storeFixture struct {
	sessions *sessionfake.FakeSessionRepo
	tokens   *tokenfake.FakeTokenRepo
	profiles *fakeProfileFetcher
	store    *session.Store
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()

	f := &storeFixture{
		sessions: sessionfake.NewFakeSessionRepo(),
		tokens:   tokenfake.NewFakeTokenRepo(),
		profiles: &fakeProfileFetcher{},
	}

	store, err := session.NewStore(f.sessions, f.tokens, f.profiles)
	require.NoError(t, err)
	f.store = store
	return f
}

func testUser() model.User {
	return model.User{ID: "u1", Name: "Jane", Email: "a@b.com", Role: model.RoleClient}
}

func testCreds() model.Credentials {
	return model.Credentials{AccessToken: "T1", RefreshToken: "R1"}
}

func TestNewStore_RequiresDependencies(t *testing.T) {
	tokens := tokenfake.NewFakeTokenRepo()
	sessions := sessionfake.NewFakeSessionRepo()
	profiles := &fakeProfileFetcher{}

	_, err := session.NewStore(nil, tokens, profiles)
	require.Error(t, err)

	_, err = session.NewStore(sessions, nil, profiles)
	require.Error(t, err)

	_, err = session.NewStore(sessions, tokens, nil)
	require.Error(t, err)
}

func TestStore_StartsAnonymous(t *testing.T) {
	f := newStoreFixture(t)

	require.False(t, f.store.IsAuthenticated())
	require.Nil(t, f.store.CurrentUser())
	require.False(t, f.store.IsLoading())
}

func TestStore_SetAuth_LoginScenario(t *testing.T) {
	f := newStoreFixture(t)

	require.NoError(t, f.store.SetAuth(testUser(), testCreds(), nil))

	snap := f.store.Snapshot()
	require.True(t, snap.IsAuthenticated)
	require.Equal(t, "u1", snap.User.ID)
	require.Equal(t, model.RoleClient, snap.User.Role)

	// Durable storage holds the pair.
	stored, err := f.tokens.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "T1", stored.AccessToken)

	// Snapshot persisted too, so a restart sees the session.
	persisted, err := f.sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	require.True(t, persisted.IsAuthenticated)
}

func TestStore_SetAuth_RejectsPartialCredentials(t *testing.T) {
	f := newStoreFixture(t)

	err := f.store.SetAuth(testUser(), model.Credentials{AccessToken: "T1"}, nil)
	require.Error(t, err)
	require.False(t, f.store.IsAuthenticated())
}

func TestStore_SetAuthThenLogout_IsIdentity(t *testing.T) {
	f := newStoreFixture(t)
	initial := f.store.Snapshot()

	profile := &model.LawyerProfile{ID: "l1", Status: model.LawyerApproved}
	require.NoError(t, f.store.SetAuth(testUser(), testCreds(), profile))
	require.NoError(t, f.store.Logout())

	require.Equal(t, initial, f.store.Snapshot())
	require.False(t, f.store.IsAuthenticated())

	stored, err := f.tokens.Load()
	require.NoError(t, err)
	require.Nil(t, stored)

	persisted, err := f.sessions.Load()
	require.NoError(t, err)
	require.Nil(t, persisted)
}

func TestStore_UpdateUser(t *testing.T) {
	t.Run("merges partial fields", func(t *testing.T) {
		f := newStoreFixture(t)
		require.NoError(t, f.store.SetAuth(testUser(), testCreds(), nil))

		require.NoError(t, f.store.UpdateUser(model.UserUpdate{
			Name: utils.Ptr("New Name"),
			City: utils.Ptr("Porto"),
		}))

		user := f.store.CurrentUser()
		require.Equal(t, "New Name", user.Name)
		require.Equal(t, "Porto", user.City)
		require.Equal(t, "a@b.com", user.Email) // untouched

		// Tokens survive a user update.
		require.True(t, f.store.IsAuthenticated())
	})

	t.Run("no-op when logged out", func(t *testing.T) {
		f := newStoreFixture(t)
		before := f.store.Snapshot()

		require.NoError(t, f.store.UpdateUser(model.UserUpdate{Name: utils.Ptr("New Name")}))
		require.Equal(t, before, f.store.Snapshot())
		require.Zero(t, f.sessions.SaveCalls)
	})
}

func TestStore_SetLawyerProfile(t *testing.T) {
	f := newStoreFixture(t)
	require.NoError(t, f.store.SetAuth(testUser(), testCreds(), nil))

	profile := &model.LawyerProfile{ID: "l1", Specialization: "family"}
	require.NoError(t, f.store.SetLawyerProfile(profile))

	snap := f.store.Snapshot()
	require.Equal(t, "l1", snap.LawyerProfile.ID)
	require.Equal(t, "u1", snap.User.ID) // user untouched
	require.True(t, snap.IsAuthenticated)

	require.NoError(t, f.store.SetLawyerProfile(nil))
	require.Nil(t, f.store.Snapshot().LawyerProfile)
}

func TestStore_CheckAuth_Success(t *testing.T) {
	f := newStoreFixture(t)
	require.NoError(t, f.tokens.Save(testCreds()))
	f.profiles.profile = &model.Profile{
		User:          testUser(),
		LawyerProfile: &model.LawyerProfile{ID: "l1"},
	}

	require.NoError(t, f.store.CheckAuth(context.Background()))

	snap := f.store.Snapshot()
	require.True(t, snap.IsAuthenticated)
	require.Equal(t, "u1", snap.User.ID)
	require.Equal(t, "l1", snap.LawyerProfile.ID)
	require.False(t, f.store.IsLoading())
}

func TestStore_CheckAuth_FailureDropsToAnonymous(t *testing.T) {
	f := newStoreFixture(t)
	require.NoError(t, f.store.SetAuth(testUser(), testCreds(), nil))
	f.profiles.err = context.DeadlineExceeded

	err := f.store.CheckAuth(context.Background())
	require.Error(t, err)

	require.False(t, f.store.IsAuthenticated())
	require.False(t, f.store.IsLoading())

	stored, loadErr := f.tokens.Load()
	require.NoError(t, loadErr)
	require.Nil(t, stored)
}

func TestStore_CheckAuth_ClearsLoadingOnEveryPath(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newStoreFixture(t)
		require.NoError(t, f.tokens.Save(testCreds()))
		f.profiles.profile = &model.Profile{User: testUser()}

		require.NoError(t, f.store.CheckAuth(context.Background()))
		require.False(t, f.store.IsLoading())
	})

	t.Run("fetch failure", func(t *testing.T) {
		f := newStoreFixture(t)
		f.profiles.err = context.DeadlineExceeded

		require.Error(t, f.store.CheckAuth(context.Background()))
		require.False(t, f.store.IsLoading())
	})

	t.Run("persist failure", func(t *testing.T) {
		f := newStoreFixture(t)
		require.NoError(t, f.tokens.Save(testCreds()))
		f.profiles.profile = &model.Profile{User: testUser()}
		f.sessions.SaveErr = context.DeadlineExceeded

		require.Error(t, f.store.CheckAuth(context.Background()))
		require.False(t, f.store.IsLoading())
	})
}

func TestStore_RehydratesPersistedSession(t *testing.T) {
	sessions := sessionfake.NewFakeSessionRepo()
	tokens := tokenfake.NewFakeTokenRepo()
	profiles := &fakeProfileFetcher{}

	user := testUser()
	creds := testCreds()
	require.NoError(t, sessions.Save(session.Snapshot{
		User:            &user,
		Tokens:          &creds,
		IsAuthenticated: true,
	}))

	store, err := session.NewStore(sessions, tokens, profiles)
	require.NoError(t, err)

	// A route guard can read this before any network call.
	require.True(t, store.IsAuthenticated())
	require.Equal(t, "u1", store.CurrentUser().ID)
}

func TestStore_RehydrationNormalizesBrokenSnapshot(t *testing.T) {
	sessions := sessionfake.NewFakeSessionRepo()
	tokens := tokenfake.NewFakeTokenRepo()

	// A snapshot claiming authentication without tokens must not be
	// trusted.
	user := testUser()
	require.NoError(t, sessions.Save(session.Snapshot{
		User:            &user,
		IsAuthenticated: true,
	}))

	store, err := session.NewStore(sessions, tokens, &fakeProfileFetcher{})
	require.NoError(t, err)
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.CurrentUser())
}
