package geojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/domain"
)

const sampleDataset = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [8.5417, 47.3769]},
			"properties": {
				"AccidentUID": "A1",
				"AccidentSeverityCategory": "as2",
				"AccidentType_en": "Accident with skidding or self-accident",
				"RoadType_en": "Principal road",
				"CantonCode": "ZH",
				"AccidentYear": "2023",
				"AccidentMonth": "7",
				"AccidentHour": "17",
				"AccidentWeekDay_en": "Friday",
				"AccidentInvolvingPedestrian": "false",
				"AccidentInvolvingBicycle": "true",
				"AccidentInvolvingMotorcycle": "false"
			}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [7.4474, 46.9481]},
			"properties": {
				"AccidentUID": "B2",
				"AccidentSeverityCategory": "as1",
				"AccidentType_en": "Accident when crossing the lane",
				"RoadType_en": "Minor road",
				"CantonCode": "BE",
				"AccidentYear": "2021",
				"AccidentMonth": "1",
				"AccidentHour": "8",
				"AccidentWeekDay_en": "Monday",
				"AccidentInvolvingPedestrian": "true",
				"AccidentInvolvingBicycle": "false",
				"AccidentInvolvingMotorcycle": "false"
			}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [2.3522, 48.8566]},
			"properties": {
				"AccidentUID": "OUTSIDE",
				"AccidentSeverityCategory": "as3",
				"AccidentYear": "2023"
			}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [8.0, 47.0]},
			"properties": {
				"AccidentUID": "NOYEAR",
				"AccidentSeverityCategory": "as3",
				"AccidentYear": "unknown"
			}
		}
	]
}`

func TestParse(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	records, err := loader.Parse([]byte(sampleDataset))
	require.NoError(t, err)

	// Paris coordinates and the unparseable year are skipped.
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "A1", first.UID)
	assert.InDelta(t, 47.3769, first.Latitude, 1e-9)
	assert.InDelta(t, 8.5417, first.Longitude, 1e-9)
	assert.Equal(t, domain.SeveritySevere, first.Severity)
	assert.Equal(t, "ZH", first.Canton)
	assert.Equal(t, 2023, first.Year)
	assert.Equal(t, 7, first.Month)
	assert.Equal(t, 17, first.Hour)
	assert.Equal(t, "Friday", first.Weekday)
	assert.True(t, first.InvolvesBicycle)
	assert.False(t, first.InvolvesPedestrian)

	second := records[1]
	assert.Equal(t, domain.SeverityFatal, second.Severity)
	assert.True(t, second.InvolvesPedestrian)
}

func TestParseGeneratesUIDWhenMissing(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	payload := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [8.0, 47.0]},
				"properties": {"AccidentYear": "2022"}
			}
		]
	}`

	records, err := loader.Parse([]byte(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].UID)
}

func TestParseRejectsEmptyDataset(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	_, err := loader.Parse([]byte(`{"type": "FeatureCollection", "features": []}`))
	assert.Error(t, err)
}

func TestTrimYears(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	records := []domain.AccidentRecord{
		{UID: "a", Year: 2018},
		{UID: "b", Year: 2021},
		{UID: "c", Year: 2022},
		{UID: "d", Year: 2023},
	}

	trimmed := loader.TrimYears(records, 3)
	require.Len(t, trimmed, 3)
	for _, r := range trimmed {
		assert.GreaterOrEqual(t, r.Year, 2021)
	}

	// Non-positive keepYears keeps everything.
	assert.Len(t, loader.TrimYears(records, 0), 4)
}
