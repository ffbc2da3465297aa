package types

type TypeShare struct {
	PropertyType string  `json:"propertyType"`
	Count        int     `json:"count"`
	Share        float64 `json:"share"`
}

type TerritorySummary struct {
	AverageBidPrice     float64     `json:"averageBidPrice"`
	AverageBidPriceText string      `json:"averageBidPriceText"`
	AverageBidRatio     float64     `json:"averageBidRatio"`
	AveragePricePerArea float64     `json:"averagePricePerArea,omitempty"`
	PropertyTypes       []TypeShare `json:"propertyTypes"`
}

type Territory struct {
	ID               string           `json:"id"`
	Row              int              `json:"row"`
	Col              int              `json:"col"`
	Bounds           Bounds           `json:"bounds"`
	Center           LatLng           `json:"center"`
	Polygon          []LatLng         `json:"polygon"`
	PropertyIDs      []string         `json:"propertyIDs"`
	Count            int              `json:"count"`
	CompetitionScore float64          `json:"competitionScore"`
	CompetitionLevel string           `json:"competitionLevel"`
	Color            string           `json:"color"`
	Summary          TerritorySummary `json:"summary"`
}

type TerritoryAnalysis struct {
	Level       int         `json:"level"`
	Divisions   int         `json:"divisions"`
	Cells       int         `json:"cells"`
	Scored      int         `json:"scored"`
	Territories []Territory `json:"territories"`
}
