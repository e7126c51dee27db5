// Package polarsteps implements the outbound TravelClient port against the
// Polarsteps REST API. Authentication uses the remember_token cookie taken
// from a logged-in browser session.
package polarsteps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
	"github.com/remuzel/polarsteps-mcp/internal/usecase"
)

// DefaultBaseURL is the production Polarsteps API endpoint.
const DefaultBaseURL = "https://api.polarsteps.com"

// Client talks to the Polarsteps API. It performs exactly one HTTP call per
// lookup; failures are reported through the response's IsError flag so the
// use-case layer can fall back to sentinels.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	rememberToken string
	logger        *slog.Logger
}

// NewClient creates a Client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL, rememberToken string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		rememberToken: rememberToken,
		logger:        logger.With("component", "polarsteps_client"),
	}
}

// GetUserByUsername fetches a user's full profile by exact username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (usecase.UserResponse, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/users/byusername/"+url.PathEscape(username), &user); err != nil {
		c.logger.Warn("User lookup failed", slog.String("username", username), slog.Any("error", err))
		return usecase.UserResponse{IsError: true}, err
	}
	return usecase.UserResponse{User: &user}, nil
}

// GetTripByID fetches a trip by its stringified numeric identifier.
func (c *Client) GetTripByID(ctx context.Context, tripID string) (usecase.TripResponse, error) {
	var trip domain.Trip
	if err := c.getJSON(ctx, "/trips/"+url.PathEscape(tripID), &trip); err != nil {
		c.logger.Warn("Trip lookup failed", slog.String("trip_id", tripID), slog.Any("error", err))
		return usecase.TripResponse{IsError: true}, err
	}
	return usecase.TripResponse{Trip: &trip}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if c.rememberToken != "" {
		req.AddCookie(&http.Cookie{Name: "remember_token", Value: c.rememberToken})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("polarsteps API returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
