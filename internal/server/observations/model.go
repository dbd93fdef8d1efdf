// Package observations implements the ownership-scoped growth observation
// store. Observations name their plant by free text, not by reference.
package observations

import "time"

// Health levels an observation can record.
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
)

type Observation struct {
	ID         string    `json:"id"`
	PlantName  string    `json:"plantName"`
	Height     string    `json:"height,omitempty"`
	Health     string    `json:"health"`
	Notes      string    `json:"notes,omitempty"`
	NextAction string    `json:"nextAction,omitempty"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
