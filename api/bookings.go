package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lexlink/lexlink-cli/model"
)

// CreateBooking books a consultation slot with a lawyer. Conflict
// resolution happens server-side; a taken slot comes back as an HTTPError.
func (c *Client) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, call{method: http.MethodPost, path: "/bookings", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClientBookings lists the caller's bookings as a client.
func (c *Client) GetClientBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.do(ctx, call{method: http.MethodGet, path: "/bookings/client/me"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLawyerBookings lists the caller's bookings as a lawyer.
func (c *Client) GetLawyerBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.do(ctx, call{method: http.MethodGet, path: "/bookings/lawyer/me"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus moves a booking to a new status.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, req model.UpdateBookingStatusRequest) (*model.Booking, error) {
	var out model.Booking
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/bookings/" + url.PathEscape(bookingID) + "/status",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*model.Booking, error) {
	var out model.Booking
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/bookings/" + url.PathEscape(bookingID) + "/cancel",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
