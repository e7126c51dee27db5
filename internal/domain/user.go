package domain

import "github.com/google/uuid"

// notFoundUUID marks sentinel entities. It is a valid v4-shaped UUID that the
// Polarsteps API will never issue for a real account or trip.
var notFoundUUID = uuid.MustParse("00000000-0000-4000-8000-000000000000")

// NotFoundUUID is the string form of the sentinel UUID shared by the
// not-found User and Trip values.
var NotFoundUUID = notFoundUUID.String()

// User is a Polarsteps account as returned by the remote API.
// Social collections (Followers, Followees, ...) carry minimal users
// (id/uuid/username only). A nil AllTrips means the API did not return the
// trips collection, which is distinct from a user with zero trips.
type User struct {
	ID                 int64   `json:"id"`
	UUID               string  `json:"uuid"`
	Username           string  `json:"username"`
	FirstName          string  `json:"first_name,omitempty"`
	LastName           string  `json:"last_name,omitempty"`
	Email              string  `json:"email,omitempty"`
	Description        string  `json:"description,omitempty"`
	LivingLocationName string  `json:"living_location_name,omitempty"`
	Locale             string  `json:"locale,omitempty"`
	CreationTime       float64 `json:"creation_time,omitempty"`
	CountryCount       int     `json:"country_count,omitempty"`

	Stats              *Stats `json:"stats,omitempty"`
	AllTrips           []Trip `json:"alltrips,omitempty"`
	Followers          []User `json:"followers,omitempty"`
	Followees          []User `json:"followees,omitempty"`
	FollowRequests     []User `json:"follow_requests,omitempty"`
	SentFollowRequests []User `json:"sent_follow_requests,omitempty"`
}

// NotFoundUser returns the sentinel User representing a failed or empty
// lookup. Callers branch on IsNotFound instead of handling nil or errors.
func NotFoundUser() User {
	return User{ID: -1, UUID: NotFoundUUID, Username: "unknown"}
}

// IsNotFound reports whether u is the not-found sentinel.
func (u User) IsNotFound() bool {
	return u.ID == -1
}

// Stats holds a user's aggregate travel metrics.
type Stats struct {
	CountryCount                  int      `json:"country_count"`
	KmCount                       float64  `json:"km_count"`
	TripCount                     int      `json:"trip_count"`
	StepCount                     int      `json:"step_count"`
	TimeTraveledInSeconds         int64    `json:"time_traveled_in_seconds"`
	Continents                    []string `json:"continents,omitempty"`
	CountryCodes                  []string `json:"country_codes,omitempty"`
	FurthestPlaceFromHomeKm       float64  `json:"furthest_place_from_home_km,omitempty"`
	FurthestPlaceFromHomeCountry  string   `json:"furthest_place_from_home_country,omitempty"`
	FurthestPlaceFromHomeLocation string   `json:"furthest_place_from_home_location,omitempty"`
	LikeCount                     int      `json:"like_count,omitempty"`
	WorldPercentage               float64  `json:"world_percentage,omitempty"`
	LastTripEndDate               int64    `json:"last_trip_end_date,omitempty"`
}
