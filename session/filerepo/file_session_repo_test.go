package filerepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/session"
	"github.com/lexlink/lexlink-cli/session/filerepo"
)

func TestFileSessionRepo_RoundTrip(t *testing.T) {
	repo, err := filerepo.New(t.TempDir())
	require.NoError(t, err)

	user := model.User{ID: "u1", Role: model.RoleLawyer}
	creds := model.Credentials{AccessToken: "T1", RefreshToken: "R1"}
	snap := session.Snapshot{
		User:            &user,
		Tokens:          &creds,
		LawyerProfile:   &model.LawyerProfile{ID: "l1", Status: model.LawyerPending},
		IsAuthenticated: true,
	}

	require.NoError(t, repo.Save(snap))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "u1", loaded.User.ID)
	require.Equal(t, "l1", loaded.LawyerProfile.ID)
	require.True(t, loaded.IsAuthenticated)
}

func TestFileSessionRepo_EmptyAndClear(t *testing.T) {
	dir := t.TempDir()
	repo, err := filerepo.New(dir)
	require.NoError(t, err)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	require.NoError(t, repo.Save(session.Snapshot{}))
	require.NoError(t, repo.Clear())

	loaded, err = repo.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	require.NoError(t, repo.Clear()) // idempotent
}

func TestFileSessionRepo_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	first, err := filerepo.New(dir)
	require.NoError(t, err)
	user := model.User{ID: "u1"}
	creds := model.Credentials{AccessToken: "T1", RefreshToken: "R1"}
	require.NoError(t, first.Save(session.Snapshot{User: &user, Tokens: &creds, IsAuthenticated: true}))

	second, err := filerepo.New(dir)
	require.NoError(t, err)
	loaded, err := second.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.True(t, loaded.IsAuthenticated)
}
