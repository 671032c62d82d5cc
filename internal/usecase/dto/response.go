package dto

import "github.com/accident-analytics/internal/domain"

// FilterResponse returns the filtered records for map/table consumers.
type FilterResponse struct {
	Records []domain.AccidentRecord `json:"records"`
	Total   int                     `json:"total"`
}

// BlackspotResponse is the ordered cluster list plus the parameters that
// produced it, so consumers can label the rendering.
type BlackspotResponse struct {
	Blackspots []domain.BlackspotSummary `json:"blackspots"`
	EpsKm      float64                   `json:"eps_km"`
	MinSamples int                       `json:"min_samples"`
	Filtered   int                       `json:"filtered_records"`
}

type SummaryResponse struct {
	Summary domain.SummaryStats `json:"summary"`
}

type RiskResponse struct {
	Risk domain.RiskMetrics `json:"risk"`
}

type TemporalResponse struct {
	Temporal domain.TemporalStats `json:"temporal"`
}

type SeasonalResponse struct {
	Seasonal domain.SeasonalStats `json:"seasonal"`
}

type YearlyResponse struct {
	Trends domain.YearOverYearTrends `json:"trends"`
}

type MonthlyTrendResponse struct {
	Metric string               `json:"metric"`
	Trend  *domain.MonthlyTrend `json:"trend"`
}
