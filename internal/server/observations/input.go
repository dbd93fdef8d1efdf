package observations

import (
	"fmt"
	"slices"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

var healthLevels = []string{HealthExcellent, HealthGood, HealthFair, HealthPoor}

// Input is the decoded body of an observation create or update request. Nil
// fields were absent from the request and stay untouched on update.
type Input struct {
	PlantName  *string `json:"plantName"`
	Height     *string `json:"height"`
	Health     *string `json:"health"`
	Notes      *string `json:"notes"`
	NextAction *string `json:"nextAction"`
}

func (in *Input) checkEnums() error {
	if in.Health != nil && *in.Health != "" && !slices.Contains(healthLevels, *in.Health) {
		return fmt.Errorf("%w: health must be one of %v", common.ErrorValidation, healthLevels)
	}
	return nil
}

// ValidateCreate requires plantName; health defaults to good when absent.
func (in *Input) ValidateCreate() error {
	if in.PlantName == nil || *in.PlantName == "" {
		return fmt.Errorf("%w: plantName is required", common.ErrorValidation)
	}
	return in.checkEnums()
}

// ValidateUpdate checks enums on the fields that are present.
func (in *Input) ValidateUpdate() error {
	return in.checkEnums()
}
