package geojson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/domain"
)

// Loader parses the federal road traffic accident GeoJSON dataset into
// domain records. Features with non-point geometry, unparseable years or
// coordinates outside the Swiss bounding box are skipped, not fatal.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Parse decodes a GeoJSON FeatureCollection payload into accident records.
func (l *Loader) Parse(data []byte) ([]domain.AccidentRecord, error) {
	var fc geomjson.FeatureCollection
	if err := fc.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	records := make([]domain.AccidentRecord, 0, len(fc.Features))
	skipped := 0

	for _, feature := range fc.Features {
		rec, ok := l.featureToRecord(feature)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid accident records in dataset (%d features skipped)", skipped)
	}

	l.logger.Info("Dataset parsed",
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)

	return records, nil
}

// TrimYears keeps records from the trailing keepYears years relative to the
// most recent year present. keepYears <= 0 keeps everything.
func (l *Loader) TrimYears(records []domain.AccidentRecord, keepYears int) []domain.AccidentRecord {
	if keepYears <= 0 || len(records) == 0 {
		return records
	}

	maxYear := records[0].Year
	for _, r := range records {
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	minYear := maxYear - keepYears + 1

	trimmed := make([]domain.AccidentRecord, 0, len(records))
	for _, r := range records {
		if r.Year >= minYear {
			trimmed = append(trimmed, r)
		}
	}

	l.logger.Info("Dataset trimmed",
		zap.Int("from_year", minYear),
		zap.Int("to_year", maxYear),
		zap.Int("kept", len(trimmed)),
		zap.Int("dropped", len(records)-len(trimmed)),
	)

	return trimmed
}

func (l *Loader) featureToRecord(feature *geomjson.Feature) (domain.AccidentRecord, bool) {
	point, ok := feature.Geometry.(*geom.Point)
	if !ok || point == nil {
		return domain.AccidentRecord{}, false
	}

	props := feature.Properties

	year, ok := propInt(props, "AccidentYear")
	if !ok {
		return domain.AccidentRecord{}, false
	}
	month, _ := propInt(props, "AccidentMonth")
	hour, _ := propInt(props, "AccidentHour")

	rec := domain.AccidentRecord{
		UID:                propString(props, "AccidentUID"),
		Longitude:          point.X(),
		Latitude:           point.Y(),
		Severity:           domain.Severity(propString(props, "AccidentSeverityCategory")),
		AccidentType:       propString(props, "AccidentType_en"),
		RoadType:           propString(props, "RoadType_en"),
		Canton:             propString(props, "CantonCode"),
		Year:               year,
		Month:              month,
		Hour:               hour,
		Weekday:            propString(props, "AccidentWeekDay_en"),
		InvolvesPedestrian: propBool(props, "AccidentInvolvingPedestrian"),
		InvolvesBicycle:    propBool(props, "AccidentInvolvingBicycle"),
		InvolvesMotorcycle: propBool(props, "AccidentInvolvingMotorcycle"),
	}

	if rec.UID == "" {
		rec.UID = uuid.NewString()
	}

	if !rec.HasValidCoordinates() {
		return domain.AccidentRecord{}, false
	}

	return rec, true
}

func propString(props map[string]interface{}, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// propInt coerces a property to int. The dataset stores numeric fields as
// strings ("2023", "7").
func propInt(props map[string]interface{}, key string) (int, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int(t), true
	case int:
		return t, true
	}
	return 0, false
}

// propBool coerces the dataset's "true"/"false" string flags.
func propBool(props map[string]interface{}, key string) bool {
	v, ok := props[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return strings.EqualFold(t, "true")
	case bool:
		return t
	}
	return false
}
