package usecase

import (
	"context"
	"strconv"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

// ResolveUser fetches a user and absorbs every failure mode (transport error,
// API error flag, missing entity) into the not-found sentinel. Handlers
// branch on the sentinel rather than on errors.
func ResolveUser(ctx context.Context, client TravelClient, username string) domain.User {
	resp, err := client.GetUserByUsername(ctx, username)
	if err != nil || resp.IsError || resp.User == nil {
		return domain.NotFoundUser()
	}
	return *resp.User
}

// ResolveTrip is the trip counterpart of ResolveUser. The numeric id is
// stringified for the API call.
func ResolveTrip(ctx context.Context, client TravelClient, tripID int64) domain.Trip {
	resp, err := client.GetTripByID(ctx, strconv.FormatInt(tripID, 10))
	if err != nil || resp.IsError || resp.Trip == nil {
		return domain.NotFoundTrip()
	}
	return *resp.Trip
}
