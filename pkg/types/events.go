package types

import "time"

type HotTerritoryDetected struct {
	TerritoryID      string    `json:"territoryID"`
	Center           LatLng    `json:"center"`
	Bounds           Bounds    `json:"bounds"`
	Count            int       `json:"count"`
	CompetitionScore float64   `json:"competitionScore"`
	CompetitionLevel string    `json:"competitionLevel"`
	Level            int       `json:"level"`
	Timestamp        time.Time `json:"timestamp"`
}

func (h *HotTerritoryDetected) ContentType() string {
	return "application/json"
}

func (h *HotTerritoryDetected) TopicName() string {
	return "auction.territory.hot"
}
