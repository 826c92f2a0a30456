package entities

// EstimateResult is the priced outcome of a residential configuration.
//
// Every breakdown entry is keyed "<roomKey>_<label>" and is already scaled by
// the package multiplier. Total is always finite and non-negative.
type EstimateResult struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
	Package   string             `json:"package"`
}

// ProjectType selects the residential or the commercial flow.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
)

// ProjectDetails is collected after room design.
type ProjectDetails struct {
	Location        string  `json:"location"`
	Timeline        string  `json:"timeline"`
	Budget          float64 `json:"budget"`
	SelectedPackage string  `json:"selected_package"`
}

// ClientInfo is the contact captured before the estimate is shown.
type ClientInfo struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

// CommercialForm is the single data step of the commercial flow.
type CommercialForm struct {
	SpaceType  string `json:"space_type" validate:"required"`
	AreaBucket string `json:"area_bucket" validate:"required"`
	Location   string `json:"location"`
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Phone      string `json:"phone" validate:"required,phone"`
	Email      string `json:"email" validate:"omitempty,email"`
}

// CommercialEstimate is the outcome of the fixed commercial formula.
type CommercialEstimate struct {
	SpaceType          string  `json:"space_type"`
	AreaBucket         string  `json:"area_bucket"`
	BasePricePerSqFt   float64 `json:"base_price_per_sqft"`
	RepresentativeArea float64 `json:"representative_area"`
	Total              float64 `json:"total"`
}
