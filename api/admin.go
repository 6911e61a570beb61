package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lexlink/lexlink-cli/model"
)

// GetAdminOverview lists lawyer profiles awaiting approval with headline
// metrics. Admin only; other roles get a 403 from the backend.
func (c *Client) GetAdminOverview(ctx context.Context) (*model.AdminOverview, error) {
	var out model.AdminOverview
	if err := c.do(ctx, call{method: http.MethodGet, path: "/lawyers/admin/overview"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveLawyer approves a pending lawyer profile.
func (c *Client) ApproveLawyer(ctx context.Context, lawyerID string) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/lawyers/" + url.PathEscape(lawyerID) + "/approve",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectLawyer rejects a pending lawyer profile.
func (c *Client) RejectLawyer(ctx context.Context, lawyerID string) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/lawyers/" + url.PathEscape(lawyerID) + "/reject",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllBookings lists every booking on the platform.
func (c *Client) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.do(ctx, call{method: http.MethodGet, path: "/bookings/admin/all"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAnalytics fetches the booking analytics counters.
func (c *Client) GetAnalytics(ctx context.Context) (*model.BookingAnalytics, error) {
	var out model.BookingAnalytics
	if err := c.do(ctx, call{method: http.MethodGet, path: "/bookings/admin/analytics"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
