package domain

// NoiseCluster marks records not belonging to any dense cluster.
const NoiseCluster = -1

// Risk score weights. These exact multipliers are part of the output contract
// with downstream consumers; do not tune them.
const (
	RiskWeightFatal  = 5
	RiskWeightSevere = 3
	RiskWeightLight  = 1
)

// BlackspotSummary describes one spatial accident cluster. Computed fresh on
// every clustering call and discarded after consumption.
type BlackspotSummary struct {
	ClusterID      int     `json:"cluster_id"`
	CenterLat      float64 `json:"center_lat"`
	CenterLon      float64 `json:"center_lon"`
	AccidentCount  int     `json:"accident_count"`
	FatalCount     int     `json:"fatal_accidents"`
	SevereCount    int     `json:"severe_accidents"`
	LightCount     int     `json:"light_accidents"`
	BicycleCount   int     `json:"bicycle_accidents"`
	Canton         string  `json:"canton"`
	MostCommonType string  `json:"most_common_type"`
	RiskScore      int     `json:"risk_score"`
}
