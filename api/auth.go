package api

import (
	"context"
	"net/http"

	"github.com/lexlink/lexlink-cli/model"
)

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   model.LoginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterClient creates a client account and returns its initial session.
func (c *Client) RegisterClient(ctx context.Context, req model.RegisterClientRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/register/client",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterLawyer creates a lawyer account with its availability schedule.
func (c *Client) RegisterLawyer(ctx context.Context, req model.RegisterLawyerRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/register/lawyer",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches the authenticated user, including the lawyer profile
// when the role is lawyer.
func (c *Client) GetProfile(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
