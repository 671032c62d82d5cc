package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Coordinates outside the Swiss bounding box",
		http.StatusBadRequest,
	)

	ErrInvalidClusterParams = New(
		"INVALID_CLUSTER_PARAMS",
		"eps_km and min_samples must be positive",
		http.StatusBadRequest,
	)

	ErrInvalidPartyMode = New(
		"INVALID_PARTY_MODE",
		"Party filter mode must be exact, any or all",
		http.StatusBadRequest,
	)

	ErrInvalidHourRange = New(
		"INVALID_HOUR_RANGE",
		"Hour range must satisfy 0 <= from <= to <= 23",
		http.StatusBadRequest,
	)

	ErrInvalidMetric = New(
		"INVALID_METRIC",
		"Metric must be one of total, fatal, bicycle, pedestrian",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNoData = New(
		"NO_DATA",
		"No accident records loaded",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
