package tasks

import (
	"fmt"
	"slices"
	"time"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

var categories = []string{"watering", "pruning", "repotting", "fertilizing", "pestControl", "maintenance"}

var priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Input is the decoded body of a task create or update request. Nil fields
// were absent from the request and stay untouched on update.
type Input struct {
	Title        *string    `json:"title"`
	Category     *string    `json:"category"`
	Priority     *string    `json:"priority"`
	Due          *time.Time `json:"due"`
	Reminder     *int       `json:"reminder"`
	ReminderTime *time.Time `json:"reminderTime"`
	Notes        *string    `json:"notes"`
	Completed    *bool      `json:"completed"`
}

func (in *Input) checkEnums() error {
	if in.Category != nil && !slices.Contains(categories, *in.Category) {
		return fmt.Errorf("%w: category must be one of %v", common.ErrorValidation, categories)
	}
	if in.Priority != nil && *in.Priority != "" && !slices.Contains(priorities, *in.Priority) {
		return fmt.Errorf("%w: priority must be one of %v", common.ErrorValidation, priorities)
	}
	return nil
}

// ValidateCreate checks the required fields (title, category, due) plus all
// enums; priority and completed fall back to their defaults when absent.
func (in *Input) ValidateCreate() error {
	if in.Title == nil || *in.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if in.Category == nil || *in.Category == "" {
		return fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if in.Due == nil {
		return fmt.Errorf("%w: due is required", common.ErrorValidation)
	}
	return in.checkEnums()
}

// ValidateUpdate checks enums on the fields that are present.
func (in *Input) ValidateUpdate() error {
	return in.checkEnums()
}
