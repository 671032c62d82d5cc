package domain

import "github.com/accident-analytics/internal/pkg/utils"

// Severity is the accident severity category code from the federal dataset.
type Severity string

const (
	SeverityFatal          Severity = "as1" // accident with fatal outcome
	SeveritySevere         Severity = "as2" // accident with severe injuries
	SeverityLight          Severity = "as3" // accident with light injuries
	SeverityPropertyDamage Severity = "as4"
)

// Party identifies a road-user group tracked by the involvement flags.
type Party string

const (
	PartyPedestrian Party = "pedestrian"
	PartyBicycle    Party = "bicycle"
	PartyMotorcycle Party = "motorcycle"
)

// Season buckets (Northern Hemisphere).
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// AccidentRecord is one geocoded accident. Records are immutable inputs to the
// analytics pipeline; nothing downstream mutates them.
type AccidentRecord struct {
	UID                string   `json:"uid" db:"uid"`
	Latitude           float64  `json:"latitude" db:"latitude"`
	Longitude          float64  `json:"longitude" db:"longitude"`
	Severity           Severity `json:"severity" db:"severity"`
	AccidentType       string   `json:"accident_type" db:"accident_type"`
	RoadType           string   `json:"road_type" db:"road_type"`
	Canton             string   `json:"canton" db:"canton"`
	Year               int      `json:"year" db:"year"`
	Month              int      `json:"month" db:"month"`
	Hour               int      `json:"hour" db:"hour"`
	Weekday            string   `json:"weekday" db:"weekday"`
	InvolvesPedestrian bool     `json:"involves_pedestrian" db:"involves_pedestrian"`
	InvolvesBicycle    bool     `json:"involves_bicycle" db:"involves_bicycle"`
	InvolvesMotorcycle bool     `json:"involves_motorcycle" db:"involves_motorcycle"`
}

// Involves reports whether the given party flag is set on the record.
func (r AccidentRecord) Involves(p Party) bool {
	switch p {
	case PartyPedestrian:
		return r.InvolvesPedestrian
	case PartyBicycle:
		return r.InvolvesBicycle
	case PartyMotorcycle:
		return r.InvolvesMotorcycle
	}
	return false
}

// HasValidCoordinates reports whether the record lies inside the Swiss
// bounding box. Records failing this are excluded from clustering input.
func (r AccidentRecord) HasValidCoordinates() bool {
	return utils.ValidateCoordinates(r.Latitude, r.Longitude)
}

// Season maps the accident month to its season, or "" for invalid months.
func (r AccidentRecord) Season() string {
	switch r.Month {
	case 12, 1, 2:
		return SeasonWinter
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	case 9, 10, 11:
		return SeasonFall
	}
	return ""
}
