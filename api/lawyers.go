package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexlink/lexlink-cli/model"
)

// SearchLawyers queries the lawyer directory. The backend only lists
// approved profiles; pagination defaults are the backend's.
func (c *Client) SearchLawyers(ctx context.Context, params model.SearchLawyersParams) (*model.Paginated[model.LawyerProfile], error) {
	var out model.Paginated[model.LawyerProfile]
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/lawyers",
		query:  searchQuery(params),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func searchQuery(params model.SearchLawyersParams) url.Values {
	query := url.Values{}
	if params.Page != nil {
		query.Set("page", strconv.Itoa(*params.Page))
	}
	if params.Limit != nil {
		query.Set("limit", strconv.Itoa(*params.Limit))
	}
	if params.Specialization != nil {
		query.Set("specialization", *params.Specialization)
	}
	if params.City != nil {
		query.Set("city", *params.City)
	}
	if params.MinFee != nil {
		query.Set("minFee", strconv.FormatFloat(*params.MinFee, 'f', -1, 64))
	}
	if params.MaxFee != nil {
		query.Set("maxFee", strconv.FormatFloat(*params.MaxFee, 'f', -1, 64))
	}
	if params.MinExperience != nil {
		query.Set("minExperience", strconv.Itoa(*params.MinExperience))
	}
	if params.MinRating != nil {
		query.Set("minRating", strconv.FormatFloat(*params.MinRating, 'f', -1, 64))
	}
	if params.Availability != nil {
		query.Set("availability", *params.Availability)
	}
	return query
}

// GetLawyerByID fetches one public lawyer profile.
func (c *Client) GetLawyerByID(ctx context.Context, id string) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	if err := c.do(ctx, call{method: http.MethodGet, path: "/lawyers/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLawyerProfile fetches the caller's own lawyer profile.
func (c *Client) GetLawyerProfile(ctx context.Context) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	if err := c.do(ctx, call{method: http.MethodGet, path: "/lawyers/me/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLawyerProfile applies a partial edit to a lawyer profile.
func (c *Client) UpdateLawyerProfile(ctx context.Context, id string, update model.LawyerProfileUpdate) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/lawyers/" + url.PathEscape(id),
		body:   update,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAvailability replaces the caller's weekly availability schedule.
func (c *Client) UpdateAvailability(ctx context.Context, availability []model.AvailabilitySlot) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/lawyers/me/availability",
		body: struct {
			Availability []model.AvailabilitySlot `json:"availability"`
		}{availability},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSpecializations lists the searchable specializations.
func (c *Client) GetSpecializations(ctx context.Context) ([]model.Specialization, error) {
	var out []model.Specialization
	if err := c.do(ctx, call{method: http.MethodGet, path: "/lawyers/specializations/list"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddReview submits a rating and optional comment for a lawyer.
func (c *Client) AddReview(ctx context.Context, lawyerID string, rating int, comment string) (*model.LawyerProfile, error) {
	var out model.LawyerProfile
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/lawyers/" + url.PathEscape(lawyerID) + "/reviews",
		body: struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment,omitempty"`
		}{rating, comment},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLawyerDashboard fetches the caller's dashboard: profile, stats, and
// pending/upcoming bookings.
func (c *Client) GetLawyerDashboard(ctx context.Context) (*model.LawyerDashboard, error) {
	var out model.LawyerDashboard
	if err := c.do(ctx, call{method: http.MethodGet, path: "/lawyers/me/dashboard"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
