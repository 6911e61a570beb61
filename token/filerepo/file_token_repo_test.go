package filerepo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token/filerepo"
)

func TestFileTokenRepo_RoundTrip(t *testing.T) {
	repo, err := filerepo.New(t.TempDir())
	require.NoError(t, err)

	creds := model.Credentials{AccessToken: "T1", RefreshToken: "R1"}
	require.NoError(t, repo.Save(creds))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, creds, *loaded)
}

func TestFileTokenRepo_LoadEmpty(t *testing.T) {
	repo, err := filerepo.New(t.TempDir())
	require.NoError(t, err)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileTokenRepo_RejectsPartialPair(t *testing.T) {
	repo, err := filerepo.New(t.TempDir())
	require.NoError(t, err)

	t.Run("missing refresh token", func(t *testing.T) {
		err := repo.Save(model.Credentials{AccessToken: "T1"})
		require.ErrorIs(t, err, errors.ErrPartialCredentials)
	})

	t.Run("missing access token", func(t *testing.T) {
		err := repo.Save(model.Credentials{RefreshToken: "R1"})
		require.ErrorIs(t, err, errors.ErrPartialCredentials)
	})

	t.Run("nothing was persisted", func(t *testing.T) {
		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Nil(t, loaded)
	})
}

func TestFileTokenRepo_Clear(t *testing.T) {
	dir := t.TempDir()
	repo, err := filerepo.New(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))
	require.NoError(t, repo.Clear())

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	// Clearing twice is fine
	require.NoError(t, repo.Clear())
}

func TestFileTokenRepo_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	first, err := filerepo.New(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))

	// A second repo over the same directory sees the stored pair, the way
	// a reloaded browser tab sees local storage.
	second, err := filerepo.New(dir)
	require.NoError(t, err)
	loaded, err := second.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "T1", loaded.AccessToken)
}

func TestFileTokenRepo_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	repo, err := filerepo.New(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileTokenRepo_IgnoresCorruptPartialFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := filerepo.New(dir)
	require.NoError(t, err)

	// Simulate an interrupted write that left only one token behind.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"),
		[]byte(`{"accessToken":"T1"}`), 0o600))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}
