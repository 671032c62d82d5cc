package domain

// SummaryStats aggregates the filtered dataset for the dashboard header.
type SummaryStats struct {
	TotalAccidents       int              `json:"total_accidents"`
	UniqueCantons        int              `json:"unique_cantons"`
	StartYear            int              `json:"start_year"`
	EndYear              int              `json:"end_year"`
	SeverityDistribution map[Severity]int `json:"severity_distribution"`
	TopAccidentTypes     []LabelCount     `json:"top_accident_types"`
	RoadTypeDistribution map[string]int   `json:"road_type_distribution"`
	TopCantons           []LabelCount     `json:"top_cantons"`
	BicycleAccidents     int              `json:"bicycle_accidents"`
	BicyclePercentage    float64          `json:"bicycle_percentage"`
	PedestrianAccidents  int              `json:"pedestrian_accidents"`
	PedestrianPercentage float64          `json:"pedestrian_percentage"`
	MotorcycleAccidents  int              `json:"motorcycle_accidents"`
	MotorcyclePercentage float64          `json:"motorcycle_percentage"`
}

// LabelCount is an ordered (label, count) pair for "top N" listings.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TemporalStats holds the monthly/hourly/weekday/yearly distributions with
// their extrema and the fitted yearly trend.
type TemporalStats struct {
	MonthlyDistribution map[int]int    `json:"monthly_distribution"`
	PeakMonth           int            `json:"peak_month"`
	LowestMonth         int            `json:"lowest_month"`
	HourlyDistribution  map[int]int    `json:"hourly_distribution"`
	PeakHour            int            `json:"peak_hour"`
	SafestHour          int            `json:"safest_hour"`
	WeekdayDistribution map[string]int `json:"weekday_distribution"`
	PeakWeekday         string         `json:"peak_weekday"`
	SafestWeekday       string         `json:"safest_weekday"`
	YearlyDistribution  map[int]int    `json:"yearly_distribution"`
	YearlyTrend         string         `json:"yearly_trend,omitempty"`
	TrendSlope          float64        `json:"trend_slope,omitempty"`
}

// SeasonalStats buckets accidents by season.
type SeasonalStats struct {
	AccidentCounts   map[string]int              `json:"accident_counts"`
	SeverityBySeason map[string]map[Severity]int `json:"severity_by_season"`
	BicycleBySeason  map[string]int              `json:"bicycle_by_season"`
}

// YearOverYearTrends carries yearly counts plus derived series.
type YearOverYearTrends struct {
	YearlyCounts    map[int]int     `json:"yearly_counts"`
	YearlyPctChange map[int]float64 `json:"yearly_pct_change,omitempty"`
	BicycleYearly   map[int]int     `json:"bicycle_yearly"`
	FatalYearly     map[int]int     `json:"fatal_yearly"`
}

// MonthlyTrend is the sparkline series for one metric: per year-month counts
// plus current/previous month delta.
type MonthlyTrend struct {
	MonthlyValues []int    `json:"monthly_values"`
	MonthlyLabels []string `json:"monthly_labels"`
	CurrentValue  int      `json:"current_value"`
	PreviousValue int      `json:"previous_value"`
	Delta         int      `json:"delta"`
	DeltaPct      float64  `json:"delta_pct"`
}

// RiskMetrics exposes severity-normalized rates across categories.
type RiskMetrics struct {
	FatalAccidentRate  float64            `json:"fatal_accident_rate"`
	SevereAccidentRate float64            `json:"severe_accident_rate"`
	RoadTypeFatalRates map[string]float64 `json:"road_type_fatal_rates"`
	HourlySevereRates  map[int]float64    `json:"hourly_severe_rates"`
	BicycleFatalRate   float64            `json:"bicycle_fatal_rate"`
	BicyclePeakHours   []int              `json:"bicycle_peak_hours"`
}
