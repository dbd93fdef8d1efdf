package plants

import (
	"fmt"
	"slices"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

// Categories accepted for a plant. The entry form has always offered Herbs
// alongside the other three, so the store accepts it as well.
var categories = []string{"Vegetables", "Fruits", "Flowers", "Herbs"}

var growthStages = []string{StageSeedling, StageVegetative, StageFlowering, StageFruiting, StageMature}

// Input is the decoded body of a plant create or update request. Nil fields
// were absent from the request and stay untouched on update.
type Input struct {
	Name             *string `json:"name"`
	Category         *string `json:"category"`
	Image            *string `json:"image"`
	Characteristics  *string `json:"characteristics"`
	CareRequirements *string `json:"careRequirements"`
	GrowthStage      *string `json:"growthStage"`
	Age              *string `json:"age"`
}

func (in *Input) checkEnums() error {
	if in.Category != nil && !slices.Contains(categories, *in.Category) {
		return fmt.Errorf("%w: category must be one of %v", common.ErrorValidation, categories)
	}
	if in.GrowthStage != nil && !slices.Contains(growthStages, *in.GrowthStage) {
		return fmt.Errorf("%w: growthStage must be one of %v", common.ErrorValidation, growthStages)
	}
	return nil
}

// ValidateCreate checks that every required field is present and all enums
// hold.
func (in *Input) ValidateCreate() error {
	for name, v := range map[string]*string{
		"name":             in.Name,
		"category":         in.Category,
		"image":            in.Image,
		"characteristics":  in.Characteristics,
		"careRequirements": in.CareRequirements,
		"growthStage":      in.GrowthStage,
		"age":              in.Age,
	} {
		if v == nil || *v == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, name)
		}
	}
	return in.checkEnums()
}

// ValidateUpdate checks enums on the fields that are present.
func (in *Input) ValidateUpdate() error {
	return in.checkEnums()
}
