// Package docs Accident Analytics API.
//
// Analytics service for the Swiss road traffic accident dataset.
// Provides filtered record access, DBSCAN-based blackspot clustering with
// per-cluster risk scoring, and summary, risk, temporal and seasonal
// statistics over the filtered subset.
//
// Main capabilities:
// - Conjunctive filtering of accident records (severity, type, road, canton, year, month, hour, involved parties)
// - Blackspot identification via density clustering with risk-ordered summaries
// - Summary statistics and severity-normalized risk metrics
// - Temporal, seasonal, year-over-year and monthly trend analyses
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
