package usecase

import (
	"context"
	"errors"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

// Standard errors returned by use cases and adapters.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrInvalidInput = errors.New("invalid tool input")
)

// UserResponse is the outcome of a user lookup against the Polarsteps API.
// IsError covers transport and HTTP-status failures; a nil User with
// IsError=false means the account does not exist.
type UserResponse struct {
	IsError bool
	User    *domain.User
}

// TripResponse is the outcome of a trip lookup. Same conventions as
// UserResponse.
type TripResponse struct {
	IsError bool
	Trip    *domain.Trip
}

// TravelClient is the outbound port to the Polarsteps API. Implementations
// live under internal/adapter/outbound and perform exactly one remote call
// per method, without retries or caching.
type TravelClient interface {
	// GetUserByUsername fetches a user's full profile by exact username.
	GetUserByUsername(ctx context.Context, username string) (UserResponse, error)

	// GetTripByID fetches a trip by its stringified numeric identifier.
	GetTripByID(ctx context.Context, tripID string) (TripResponse, error)
}
