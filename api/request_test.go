package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink-cli/api"
	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
	"github.com/lexlink/lexlink-cli/token/repofake"
)

// backendFixture scripts a fake marketplace backend: the /auth/me endpoint
// replies 401 for the first `unauthorizedCount` hits, then 200, and
// /auth/refresh either rotates the pair or rejects.
type backendFixture struct {
	server *httptest.Server
	tokens *repofake.FakeTokenRepo
	client *api.Client

	meHits          atomic.Int32
	refreshHits     atomic.Int32
	unauthorized    atomic.Int32 // remaining 401s to serve on /auth/me
	refreshRejects  bool
	seenBearers     []string
	expiredHookHits atomic.Int32
}

func newBackendFixture(t *testing.T) *backendFixture {
	t.Helper()

	f := &backendFixture{tokens: repofake.NewFakeTokenRepo()}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.meHits.Add(1)
		f.seenBearers = append(f.seenBearers, r.Header.Get("Authorization"))

		if f.unauthorized.Load() > 0 {
			f.unauthorized.Add(-1)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.Profile{
			User: model.User{ID: "u1", Name: "Jane", Email: "a@b.com", Role: model.RoleClient},
		})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshHits.Add(1)

		// Refresh is a dedicated unauthenticated call.
		require.Empty(t, r.Header.Get("Authorization"))

		var req model.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if f.refreshRejects {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"refresh token revoked"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.RefreshResponse{
			Tokens: model.Credentials{AccessToken: "T2", RefreshToken: "R2"},
		})
	})
	mux.HandleFunc("/lawyers/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"lawyer not found"}`))
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	client, err := api.New(f.server.URL, f.tokens,
		api.WithSessionExpiredHook(func() { f.expiredHookHits.Add(1) }))
	require.NoError(t, err)
	f.client = client

	return f
}

func TestClient_AttachesStoredBearerToken(t *testing.T) {
	f := newBackendFixture(t)
	require.NoError(t, f.tokens.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))

	profile, err := f.client.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", profile.ID)
	require.Equal(t, []string{"Bearer T1"}, f.seenBearers)
}

func TestClient_NoTokenMeansNoAuthorizationHeader(t *testing.T) {
	f := newBackendFixture(t)

	_, err := f.client.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{""}, f.seenBearers)
}

func TestClient_RefreshThenRetryOnce(t *testing.T) {
	f := newBackendFixture(t)
	require.NoError(t, f.tokens.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))
	f.unauthorized.Store(1)

	profile, err := f.client.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", profile.ID)

	// Original request, one refresh, one retry with the rotated token.
	require.EqualValues(t, 2, f.meHits.Load())
	require.EqualValues(t, 1, f.refreshHits.Load())
	require.Equal(t, []string{"Bearer T1", "Bearer T2"}, f.seenBearers)

	stored, err := f.tokens.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, model.Credentials{AccessToken: "T2", RefreshToken: "R2"}, *stored)

	require.EqualValues(t, 0, f.expiredHookHits.Load())
}

func TestClient_RefreshFailureClearsTokensAndPropagates(t *testing.T) {
	f := newBackendFixture(t)
	require.NoError(t, f.tokens.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))
	f.unauthorized.Store(1)
	f.refreshRejects = true

	_, err := f.client.GetProfile(context.Background())
	require.Error(t, err)

	// The caller sees the refresh failure, not the original 401.
	require.ErrorIs(t, err, errors.ErrRefreshFailed)

	stored, loadErr := f.tokens.Load()
	require.NoError(t, loadErr)
	require.Nil(t, stored)

	require.EqualValues(t, 1, f.expiredHookHits.Load())
	require.EqualValues(t, 1, f.meHits.Load()) // no retry after a failed refresh
}

func TestClient_SecondUnauthorizedPropagatesWithoutSecondRefresh(t *testing.T) {
	f := newBackendFixture(t)
	require.NoError(t, f.tokens.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))
	f.unauthorized.Store(2) // 401 on the original call AND on the retry

	_, err := f.client.GetProfile(context.Background())
	require.Error(t, err)

	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Status)

	// Exactly one refresh attempt, never a loop.
	require.EqualValues(t, 1, f.refreshHits.Load())
	require.EqualValues(t, 2, f.meHits.Load())
}

func TestClient_MissingRefreshTokenPropagatesOriginal401(t *testing.T) {
	f := newBackendFixture(t)
	f.unauthorized.Store(1)

	_, err := f.client.GetProfile(context.Background())
	require.Error(t, err)

	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Status)
	require.Equal(t, "token expired", httpErr.Message)

	require.EqualValues(t, 0, f.refreshHits.Load())
	require.EqualValues(t, 0, f.expiredHookHits.Load())
}

func TestClient_OtherErrorsPropagateUnchanged(t *testing.T) {
	f := newBackendFixture(t)
	require.NoError(t, f.tokens.Save(model.Credentials{AccessToken: "T1", RefreshToken: "R1"}))

	_, err := f.client.GetLawyerByID(context.Background(), "missing")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrNotFound)

	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "lawyer not found", httpErr.Message)
	require.EqualValues(t, 0, f.refreshHits.Load())
}

func TestClient_RequestIDHeader(t *testing.T) {
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := api.New(server.URL, repofake.NewFakeTokenRepo())
	require.NoError(t, err)

	_, err = client.GetProfile(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, requestID)
}
