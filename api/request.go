package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/model"
)

// call describes one outbound request before it is issued.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

// maxAttempts bounds the refresh protocol: the original request plus at
// most one retry after a successful refresh. A 401 on the second attempt
// propagates.
const maxAttempts = 2

// do executes a call, transparently refreshing credentials once on 401 and
// decoding a 2xx body into out (skipped when out is nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	var payload []byte
	if cl.body != nil {
		var err error
		if payload, err = json.Marshal(cl.body); err != nil {
			return errors.Wrapf(err, "[Client.do] marshalling %s %s body", cl.method, cl.path)
		}
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, respBody, err := c.send(ctx, cl, payload)
		if err != nil {
			return err
		}

		if status >= 200 && status < 300 {
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return errors.Wrapf(err, "[Client.do] decoding %s %s response", cl.method, cl.path)
			}
			return nil
		}

		httpErr := newHTTPError(status, respBody)

		if status == http.StatusUnauthorized && attempt < maxAttempts {
			refreshErr := c.refresh(ctx)
			if refreshErr == nil {
				c.logger.Debug().Str("path", cl.path).Msg("credentials refreshed, retrying request")
				continue
			}
			if errors.Is(refreshErr, errors.ErrNoRefreshToken) {
				// Nothing to refresh with: the original 401 stands.
				return httpErr
			}
			return refreshErr
		}

		return httpErr
	}

	// Unreachable: every attempt either returns or continues into the next.
	return errors.ErrInternal
}

// send issues the request once. The access token is read fresh on every
// attempt so a retry picks up the rotated credentials.
func (c *Client) send(ctx context.Context, cl call, payload []byte) (int, []byte, error) {
	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "[Client.send] building %s %s", cl.method, cl.path)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Storage failures degrade to an unauthenticated request rather than
	// aborting the call.
	if creds, err := c.tokens.Load(); err == nil && creds != nil && creds.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	c.logger.Debug().Str("method", cl.method).Str("path", cl.path).Msg("issuing request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "[Client.send] %s %s", cl.method, cl.path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "[Client.send] reading %s %s response", cl.method, cl.path)
	}

	return resp.StatusCode, respBody, nil
}

// refresh exchanges the stored refresh token for a fresh pair. It is a
// dedicated unauthenticated call: no bearer header, no recursion through
// do. Any failure beyond a missing refresh token clears the stored
// credentials and fires the session-expired hook.
func (c *Client) refresh(ctx context.Context) error {
	creds, err := c.tokens.Load()
	if err != nil || creds == nil || creds.RefreshToken == "" {
		return errors.ErrNoRefreshToken
	}

	payload, err := json.Marshal(model.RefreshRequest{RefreshToken: creds.RefreshToken})
	if err != nil {
		return errors.Wrapf(err, "[Client.refresh] marshalling refresh request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return c.expireSession(errors.Wrapf(err, "[Client.refresh] building refresh request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.expireSession(errors.Wrapf(err, "[Client.refresh] issuing refresh request"))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.expireSession(errors.Wrapf(err, "[Client.refresh] reading refresh response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.expireSession(errors.Wrapf(newHTTPError(resp.StatusCode, respBody), "[Client.refresh] refresh rejected"))
	}

	var refreshed model.RefreshResponse
	if err := json.Unmarshal(respBody, &refreshed); err != nil {
		return c.expireSession(errors.Wrapf(err, "[Client.refresh] decoding refresh response"))
	}
	if !refreshed.Tokens.Complete() {
		return c.expireSession(errors.Wrapf(errors.ErrPartialCredentials, "[Client.refresh] backend returned incomplete pair"))
	}

	if err := c.tokens.Save(refreshed.Tokens); err != nil {
		return c.expireSession(errors.Wrapf(err, "[Client.refresh] persisting rotated pair"))
	}

	c.logger.Debug().Msg("credential pair rotated")
	return nil
}

// expireSession clears both stored tokens, notifies the UI layer, and
// wraps cause as the terminal refresh failure.
func (c *Client) expireSession(cause error) error {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("clearing credentials after failed refresh")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	c.logger.Debug().Err(cause).Msg("session expired")
	return fmt.Errorf("%w: %w", errors.ErrRefreshFailed, cause)
}
