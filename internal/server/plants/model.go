// Package plants implements the ownership-scoped plant store.
package plants

import "time"

// Growth stages a plant can be in.
const (
	StageSeedling   = "Seedling"
	StageVegetative = "Vegetative"
	StageFlowering  = "Flowering"
	StageFruiting   = "Fruiting"
	StageMature     = "Mature"
)

type Plant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Image            string    `json:"image"`
	Characteristics  string    `json:"characteristics"`
	CareRequirements string    `json:"careRequirements"`
	GrowthStage      string    `json:"growthStage"`
	Age              string    `json:"age"`
	UserID           string    `json:"userId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
