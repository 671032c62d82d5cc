package dto

import (
	"github.com/accident-analytics/internal/analytics"
	"github.com/accident-analytics/internal/domain"
)

// FilterRequest mirrors the dashboard sidebar: every field is optional and an
// absent field means "no restriction".
type FilterRequest struct {
	Years         []int    `json:"years,omitempty"`
	Severities    []string `json:"severities,omitempty" validate:"omitempty,dive,oneof=as1 as2 as3 as4"`
	AccidentTypes []string `json:"accident_types,omitempty"`
	RoadTypes     []string `json:"road_types,omitempty"`
	Cantons       []string `json:"cantons,omitempty" validate:"omitempty,dive,len=2"`
	Parties       []string `json:"parties,omitempty" validate:"omitempty,dive,oneof=pedestrian bicycle motorcycle"`
	PartyMode     string   `json:"party_mode,omitempty" validate:"omitempty,oneof=exact any all"`
	Months        []int    `json:"months,omitempty" validate:"omitempty,dive,min=1,max=12"`
	HourFrom      *int     `json:"hour_from,omitempty" validate:"omitempty,min=0,max=23"`
	HourTo        *int     `json:"hour_to,omitempty" validate:"omitempty,min=0,max=23"`
}

// ToCriteria converts the wire representation into engine criteria.
func (r FilterRequest) ToCriteria() analytics.FilterCriteria {
	criteria := analytics.FilterCriteria{
		Years:         r.Years,
		AccidentTypes: r.AccidentTypes,
		RoadTypes:     r.RoadTypes,
		Cantons:       r.Cantons,
		Months:        r.Months,
		PartyMode:     analytics.PartyMode(r.PartyMode),
	}

	for _, s := range r.Severities {
		criteria.Severities = append(criteria.Severities, domain.Severity(s))
	}
	for _, p := range r.Parties {
		criteria.Parties = append(criteria.Parties, domain.Party(p))
	}
	if r.HourFrom != nil || r.HourTo != nil {
		hours := analytics.HourRange{From: 0, To: 23}
		if r.HourFrom != nil {
			hours.From = *r.HourFrom
		}
		if r.HourTo != nil {
			hours.To = *r.HourTo
		}
		criteria.Hours = &hours
	}

	return criteria
}

// BlackspotRequest combines filter criteria with the clustering parameters.
type BlackspotRequest struct {
	FilterRequest
	EpsKm      float64 `json:"eps_km" validate:"required,gt=0,lte=10"`
	MinSamples int     `json:"min_samples" validate:"required,gt=0,lte=1000"`
}

// MonthlyTrendRequest selects the sparkline metric over a filtered subset.
type MonthlyTrendRequest struct {
	FilterRequest
	Metric string `json:"metric" validate:"omitempty,oneof=total fatal bicycle pedestrian"`
}
