package request

import (
	"strings"

	"interior_estimator/internal/domain/entities"
)

type ProjectTypeRequest struct {
	ProjectType string `json:"project_type" binding:"required"`
}

func (r ProjectTypeRequest) ToProjectType() entities.ProjectType {
	return entities.ProjectType(strings.ToLower(strings.TrimSpace(r.ProjectType)))
}

type CustomRoomCountsRequest struct {
	LivingRooms int `json:"living_rooms"`
	Bedrooms    int `json:"bedrooms"`
	Kitchens    int `json:"kitchens"`
	Bathrooms   int `json:"bathrooms"`
	Dinings     int `json:"dinings"`
}

// BhkRequest selects a fixed layout ("2BHK") or "custom" with counts.
type BhkRequest struct {
	Type   string                   `json:"type" binding:"required"`
	Custom *CustomRoomCountsRequest `json:"custom,omitempty"`
}

func (r BhkRequest) ToSelection() entities.BhkSelection {
	sel := entities.BhkSelection{Type: entities.BhkType(normalizeBhk(r.Type))}
	if r.Custom != nil {
		sel.Custom = entities.CustomRoomCounts{
			LivingRooms: r.Custom.LivingRooms,
			Bedrooms:    r.Custom.Bedrooms,
			Kitchens:    r.Custom.Kitchens,
			Bathrooms:   r.Custom.Bathrooms,
			Dinings:     r.Custom.Dinings,
		}
	}
	return sel
}

func normalizeBhk(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, string(entities.BhkCustom)) {
		return string(entities.BhkCustom)
	}
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

type ProjectDetailsRequest struct {
	Location string  `json:"location"`
	Timeline string  `json:"timeline"`
	Budget   float64 `json:"budget"`
	Package  string  `json:"package"`
}

func (r ProjectDetailsRequest) ToProjectDetails() entities.ProjectDetails {
	return entities.ProjectDetails{
		Location:        r.Location,
		Timeline:        r.Timeline,
		Budget:          r.Budget,
		SelectedPackage: r.Package,
	}
}

type PackageRequest struct {
	Package string `json:"package" binding:"required"`
}

type ClientInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ClientInfoRequest) ToClientInfo() entities.ClientInfo {
	return entities.ClientInfo{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type CommercialFormRequest struct {
	SpaceType  string `json:"space_type"`
	AreaBucket string `json:"area_bucket"`
	Location   string `json:"location"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (r CommercialFormRequest) ToCommercialForm() entities.CommercialForm {
	return entities.CommercialForm{
		SpaceType:  r.SpaceType,
		AreaBucket: r.AreaBucket,
		Location:   r.Location,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}
