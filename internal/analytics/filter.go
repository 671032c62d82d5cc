package analytics

import (
	"github.com/accident-analytics/internal/domain"
)

// PartyMode selects how the involved-party filter combines the chosen parties.
type PartyMode string

const (
	// PartyModeExact keeps records where ONLY the chosen parties are involved.
	PartyModeExact PartyMode = "exact"
	// PartyModeAny keeps records involving at least one chosen party.
	PartyModeAny PartyMode = "any"
	// PartyModeAll keeps records involving every chosen party; others may also
	// be involved.
	PartyModeAll PartyMode = "all"
)

// HourRange is an inclusive [From, To] hour-of-day window.
type HourRange struct {
	From int
	To   int
}

// FilterCriteria is a conjunction of optional predicates. A nil/empty slice
// means "no restriction" for that dimension.
type FilterCriteria struct {
	Years         []int
	Severities    []domain.Severity
	AccidentTypes []string
	RoadTypes     []string
	Cantons       []string
	Parties       []domain.Party
	PartyMode     PartyMode
	Months        []int
	Hours         *HourRange
}

// Filter returns the subset of records satisfying all active criteria. It is
// a pure function: the input slice is never modified and the result is a
// fresh slice. An empty result is a valid, non-error outcome.
func Filter(records []domain.AccidentRecord, c FilterCriteria) []domain.AccidentRecord {
	years := intSet(c.Years)
	severities := severitySet(c.Severities)
	accidentTypes := stringSet(c.AccidentTypes)
	roadTypes := stringSet(c.RoadTypes)
	cantons := stringSet(c.Cantons)
	months := intSet(c.Months)

	result := make([]domain.AccidentRecord, 0, len(records))
	for _, r := range records {
		if years != nil && !years[r.Year] {
			continue
		}
		if severities != nil && !severities[r.Severity] {
			continue
		}
		if accidentTypes != nil && !accidentTypes[r.AccidentType] {
			continue
		}
		if roadTypes != nil && !roadTypes[r.RoadType] {
			continue
		}
		if cantons != nil && !cantons[r.Canton] {
			continue
		}
		if !passesParties(r, c.Parties, c.PartyMode) {
			continue
		}
		if months != nil && !months[r.Month] {
			continue
		}
		if c.Hours != nil && (r.Hour < c.Hours.From || r.Hour > c.Hours.To) {
			continue
		}
		result = append(result, r)
	}
	return result
}

var allParties = []domain.Party{
	domain.PartyPedestrian,
	domain.PartyBicycle,
	domain.PartyMotorcycle,
}

// passesParties applies the involved-party filter. No selected parties means
// the filter is a no-op. An unrecognized mode falls back to exact, the
// default in the reference UI.
func passesParties(r domain.AccidentRecord, parties []domain.Party, mode PartyMode) bool {
	if len(parties) == 0 {
		return true
	}

	selected := make(map[domain.Party]bool, len(parties))
	for _, p := range parties {
		selected[p] = true
	}

	switch mode {
	case PartyModeAny:
		for p := range selected {
			if r.Involves(p) {
				return true
			}
		}
		return false
	case PartyModeAll:
		for p := range selected {
			if !r.Involves(p) {
				return false
			}
		}
		return true
	default: // PartyModeExact
		for _, p := range allParties {
			if r.Involves(p) != selected[p] {
				return false
			}
		}
		return true
	}
}

func intSet(values []int) map[int]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func severitySet(values []domain.Severity) map[domain.Severity]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[domain.Severity]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
