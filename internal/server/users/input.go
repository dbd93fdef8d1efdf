package users

import (
	"fmt"
	"slices"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

var (
	roles       = []string{RoleGardener, RoleSupervisor, RoleHomeowner, RoleAdmin}
	climates    = []string{"tropical", "temperate", "arid", "mediterranean"}
	soilTypes   = []string{"clay", "sandy", "loamy", "silty"}
	experiences = []string{"beginner", "intermediate", "advanced", "expert"}
)

// Input is the decoded body of a registration or profile-update request.
// Nil fields were absent from the request and stay untouched on update.
type Input struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	UserName   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Location   *string `json:"location"`
	Climate    *string `json:"climate"`
	SoilType   *string `json:"soilType"`
	Experience *string `json:"experience"`
}

func requireField(name string, v *string) error {
	if v == nil || *v == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, name)
	}
	return nil
}

func checkEnum(name string, v *string, allowed []string) error {
	if v == nil || *v == "" {
		return nil
	}
	if !slices.Contains(allowed, *v) {
		return fmt.Errorf("%w: %s must be one of %v", common.ErrorValidation, name, allowed)
	}
	return nil
}

func (in *Input) checkEnums() error {
	if err := checkEnum("role", in.Role, roles); err != nil {
		return err
	}
	if err := checkEnum("climate", in.Climate, climates); err != nil {
		return err
	}
	if err := checkEnum("soilType", in.SoilType, soilTypes); err != nil {
		return err
	}
	return checkEnum("experience", in.Experience, experiences)
}

// ValidateCreate checks the required registration fields plus all enums.
func (in *Input) ValidateCreate() error {
	for name, v := range map[string]*string{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"username":  in.UserName,
		"email":     in.Email,
		"password":  in.Password,
	} {
		if err := requireField(name, v); err != nil {
			return err
		}
	}
	return in.checkEnums()
}

// ValidateUpdate checks enums on the fields that are present; a partial
// update may leave any field out.
func (in *Input) ValidateUpdate() error {
	return in.checkEnums()
}
