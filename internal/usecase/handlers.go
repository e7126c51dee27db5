package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
	"github.com/remuzel/polarsteps-mcp/internal/fuzzy"
)

// popularFollowerThreshold is the follower count above which
// get_user_social_status flags an account as popular.
const popularFollowerThreshold = 100

// userProfile is the JSON payload returned by get_user.
type userProfile struct {
	Username           string `json:"username"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	LivingLocationName string `json:"living_location_name,omitempty"`
	CountryCount       int    `json:"country_count"`
	TripCount          int    `json:"trip_count"`
}

// tripSummary is the per-trip JSON payload returned by get_trips.
type tripSummary struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	StartDate  int64   `json:"start_date"`
	EndDate    int64   `json:"end_date"`
	LengthDays int64   `json:"length_days"`
	TotalKm    float64 `json:"total_km"`
	StepCount  int     `json:"step_count"`
}

// searchMatch is the per-match JSON payload returned by search_trips.
type searchMatch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// tripDetail is the JSON payload returned by get_trip.
type tripDetail struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Summary    string        `json:"summary,omitempty"`
	StartDate  int64         `json:"start_date"`
	EndDate    int64         `json:"end_date"`
	LengthDays int64         `json:"length_days"`
	TotalKm    float64       `json:"total_km"`
	StepCount  int           `json:"step_count"`
	Views      int           `json:"views,omitempty"`
	Steps      []stepSummary `json:"steps"`
}

type stepSummary struct {
	Name        string           `json:"name"`
	Location    *domain.Location `json:"location,omitempty"`
	Description string           `json:"description,omitempty"`
	StartTime   int64            `json:"start_time"`
}

// logEntry is the per-step JSON payload returned by get_trip_log.
type logEntry struct {
	Timestamp   int64  `json:"timestamp"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// GetUser returns a compact profile for the given username, or a not-found
// message when the account does not exist or is private.
func GetUser(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	username := stringArg(args, "username")
	user := ResolveUser(ctx, client, username)
	if user.IsNotFound() {
		return single(userNotFoundMessage(username)), nil
	}
	return jsonSegment(userProfile{
		Username:           user.Username,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		LivingLocationName: user.LivingLocationName,
		CountryCount:       user.CountryCount,
		TripCount:          len(user.AllTrips),
	})
}

// GetUserSocialStatus summarizes a user's follow graph in one sentence.
func GetUserSocialStatus(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	username := stringArg(args, "username")
	user := ResolveUser(ctx, client, username)
	if user.IsNotFound() {
		return single(userNotFoundMessage(username)), nil
	}
	msg := fmt.Sprintf("%s %s follows %d and is followed by %d! They have %d outgoing requests, and %d incoming...",
		user.FirstName, user.LastName,
		len(user.Followees), len(user.Followers),
		len(user.SentFollowRequests), len(user.FollowRequests))
	if len(user.Followers) > popularFollowerThreshold {
		msg += " They are quite popular!"
	}
	return single(msg), nil
}

// GetTravelStats returns the user's aggregate travel metrics as JSON.
func GetTravelStats(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	username := stringArg(args, "username")
	user := ResolveUser(ctx, client, username)
	if user.Stats == nil {
		return single(fmt.Sprintf("User @%s does not have travel stats", username)), nil
	}
	return jsonSegment(user.Stats)
}

// GetTrips returns one summary segment per trip, truncated to the first
// n_trips in the order the API returned them. The collection is never
// re-sorted; the API's order is not guaranteed chronological.
func GetTrips(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	username := stringArg(args, "username")
	nTrips := intArg(args, "n_trips")

	user := ResolveUser(ctx, client, username)
	if user.AllTrips == nil {
		return single(fmt.Sprintf("User @%s does not have any trips!", username)), nil
	}

	trips := user.AllTrips
	if nTrips < int64(len(trips)) {
		trips = trips[:nTrips]
	}
	segments := make([]domain.TextSegment, 0, len(trips))
	for _, trip := range trips {
		seg, err := encodeSegment(tripSummary{
			ID:         trip.ID,
			Name:       trip.Label(),
			StartDate:  trip.StartDate,
			EndDate:    trip.EndDate,
			LengthDays: trip.LengthDays(),
			TotalKm:    trip.TotalKm,
			StepCount:  trip.StepCount,
		})
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// SearchTrips fuzzy-matches the query against every trip's name and,
// separately, its summary. Both match lists are returned, so a trip matching
// on both fields appears twice. No matches means no segments; unlike the
// other handlers there is deliberately no placeholder message.
func SearchTrips(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	username := stringArg(args, "username")
	query := stringArg(args, "query")

	user := ResolveUser(ctx, client, username)
	if user.AllTrips == nil {
		return single(fmt.Sprintf("User @%s does not have any trips!", username)), nil
	}

	byName := fuzzy.Search(user.AllTrips, query, func(t domain.Trip) string { return t.Name })
	bySummary := fuzzy.Search(user.AllTrips, query, func(t domain.Trip) string { return t.Summary })

	segments := make([]domain.TextSegment, 0, len(byName)+len(bySummary))
	for _, match := range append(byName, bySummary...) {
		seg, err := encodeSegment(searchMatch{ID: match.Item.ID, Name: match.Item.Name})
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// GetTrip returns a detailed trip summary including up to n_steps of its
// steps. Steps beyond the cap are omitted entirely.
func GetTrip(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	tripID := intArg(args, "trip_id")
	nSteps := intArg(args, "n_steps")

	trip := ResolveTrip(ctx, client, tripID)
	if trip.IsNotFound() {
		return single(tripNotFoundMessage(tripID)), nil
	}

	steps := trip.AllSteps
	if nSteps < int64(len(steps)) {
		steps = steps[:nSteps]
	}
	detail := tripDetail{
		ID:         trip.ID,
		Name:       trip.Name,
		Summary:    trip.Summary,
		StartDate:  trip.StartDate,
		EndDate:    trip.EndDate,
		LengthDays: trip.LengthDays(),
		TotalKm:    trip.TotalKm,
		StepCount:  trip.StepCount,
		Views:      trip.Views,
		Steps:      make([]stepSummary, 0, len(steps)),
	}
	for _, step := range steps {
		detail.Steps = append(detail.Steps, stepSummary{
			Name:        derefName(step.Name),
			Location:    step.Location,
			Description: step.Description,
			StartTime:   step.StartTime,
		})
	}
	return jsonSegment(detail)
}

// GetTripLog returns one segment per named step of the trip, in the trip's
// own order. Steps without a name carry no log entry and are skipped.
func GetTripLog(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error) {
	tripID := intArg(args, "trip_id")

	trip := ResolveTrip(ctx, client, tripID)
	if trip.IsNotFound() {
		return single(tripNotFoundMessage(tripID)), nil
	}
	if trip.AllSteps == nil {
		return single(fmt.Sprintf("Trip with ID %d does not have any logged steps", tripID)), nil
	}

	segments := make([]domain.TextSegment, 0, len(trip.AllSteps))
	for _, step := range trip.AllSteps {
		if step.Name == nil {
			continue
		}
		seg, err := encodeSegment(logEntry{
			Timestamp:   stepTimestamp(step),
			Title:       *step.Name,
			Description: step.Description,
			Location:    renderLocation(step.Location),
		})
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func userNotFoundMessage(username string) string {
	return fmt.Sprintf("User not found: No Polarsteps user exists with username=%s. Please verify the username is correct and the user's profile is public.", username)
}

func tripNotFoundMessage(tripID int64) string {
	return fmt.Sprintf("Could not find trip with ID: %d", tripID)
}

// renderLocation formats a step location as "<name> (<country code>)", or the
// literal "Unknown" when the step has none.
func renderLocation(loc *domain.Location) string {
	if loc == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%s (%s)", loc.Name, loc.CountryCode)
}

// stepTimestamp prefers the step's explicit timestamp, falling back to its
// start time for older API payloads.
func stepTimestamp(step domain.Step) int64 {
	if step.Timestamp != 0 {
		return step.Timestamp
	}
	return step.StartTime
}

func derefName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

func single(text string) []domain.TextSegment {
	return []domain.TextSegment{domain.Text(text)}
}

func encodeSegment(v any) (domain.TextSegment, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return domain.TextSegment{}, fmt.Errorf("failed to encode segment payload: %w", err)
	}
	return domain.Text(string(body)), nil
}

func jsonSegment(v any) ([]domain.TextSegment, error) {
	seg, err := encodeSegment(v)
	if err != nil {
		return nil, err
	}
	return []domain.TextSegment{seg}, nil
}

// stringArg and intArg read validated arguments. Types are guaranteed by
// JSONSchemaProps.ValidateInput, so a missing optional simply zero-values.
func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string) int64 {
	n, _ := args[name].(int64)
	return n
}
