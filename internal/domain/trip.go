package domain

// secondsPerDay converts the epoch-second trip dates into whole days.
const secondsPerDay = 86400

// Trip is a single journey with an ordered sequence of steps.
// AllSteps may be nil when the API response did not include steps, which is
// distinct from a trip with an empty step list.
type Trip struct {
	ID          int64   `json:"id"`
	UUID        string  `json:"uuid"`
	Name        string  `json:"name,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Summary     string  `json:"summary,omitempty"`
	StartDate   int64   `json:"start_date,omitempty"`
	EndDate     int64   `json:"end_date,omitempty"`
	TotalKm     float64 `json:"total_km,omitempty"`
	StepCount   int     `json:"step_count,omitempty"`
	Views       int     `json:"views,omitempty"`
	AllSteps    []Step  `json:"all_steps,omitempty"`
}

// NotFoundTrip returns the sentinel Trip representing a failed or empty lookup.
func NotFoundTrip() Trip {
	return Trip{ID: -1, UUID: NotFoundUUID}
}

// IsNotFound reports whether t is the not-found sentinel.
func (t Trip) IsNotFound() bool {
	return t.ID == -1
}

// LengthDays returns the trip duration in whole days, or 0 when either date
// is missing.
func (t Trip) LengthDays() int64 {
	if t.StartDate == 0 || t.EndDate == 0 || t.EndDate < t.StartDate {
		return 0
	}
	return (t.EndDate - t.StartDate) / secondsPerDay
}

// Label returns the display name when set, the plain name otherwise.
func (t Trip) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// Step is one entry in a trip. Name is a pointer because the API distinguishes
// unnamed steps (nil) from steps named with an empty string; unnamed steps are
// excluded from trip logs.
type Step struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	TripID      int64     `json:"trip_id"`
	Name        *string   `json:"name"`
	Description string    `json:"description,omitempty"`
	StartTime   int64     `json:"start_time,omitempty"`
	Timestamp   int64     `json:"timestamp,omitempty"`
	Location    *Location `json:"location,omitempty"`
	IsDeleted   bool      `json:"is_deleted,omitempty"`
}

// Location is the place a step was logged at.
type Location struct {
	Name        string `json:"name,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
