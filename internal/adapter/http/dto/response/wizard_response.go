package response

import (
	"time"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/wizard"
)

// WizardSessionResponse is the public view of a session. The estimate is
// reduced to its total; the itemized breakdown needs a login.
type WizardSessionResponse struct {
	ID                 string                      `json:"id"`
	Version            int64                       `json:"version"`
	State              string                      `json:"state"`
	ProjectType        string                      `json:"project_type,omitempty"`
	Bhk                entities.BhkSelection       `json:"bhk"`
	Layout             []string                    `json:"layout"`
	Rooms              map[string]RoomResponse     `json:"rooms"`
	ProjectDetails     entities.ProjectDetails     `json:"project_details"`
	ClientInfo         entities.ClientInfo         `json:"client_info"`
	Commercial         entities.CommercialForm     `json:"commercial"`
	Packages           []string                    `json:"packages"`
	EstimateTotal      *float64                    `json:"estimate_total,omitempty"`
	CommercialEstimate *CommercialEstimateResponse `json:"commercial_estimate,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

type RoomResponse struct {
	RoomType     string         `json:"room_type"`
	Area         *float64       `json:"area,omitempty"`
	FalseCeiling bool           `json:"false_ceiling"`
	Loft         bool           `json:"loft"`
	KidsRoom     bool           `json:"kids_room"`
	Shape        string         `json:"shape,omitempty"`
	Accessories  map[string]int `json:"accessories,omitempty"`
}

func FromWizardSession(s wizard.Session) WizardSessionResponse {
	w := s.Wizard
	res := WizardSessionResponse{
		ID:             s.ID,
		Version:        s.Version,
		State:          string(w.State),
		ProjectType:    string(w.ProjectType),
		Bhk:            w.Bhk,
		Layout:         entities.LayoutRoomKeys(entities.ResolveLayout(w.Bhk)),
		Rooms:          make(map[string]RoomResponse, len(w.Rooms.Rooms)),
		ProjectDetails: w.Details,
		ClientInfo:     w.Client,
		Commercial:     w.Commercial,
		Packages:       w.Catalog.Packages(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for key, r := range w.Rooms.Rooms {
		res.Rooms[key] = RoomResponse{
			RoomType:     string(r.RoomType),
			Area:         r.Area,
			FalseCeiling: r.FalseCeiling,
			Loft:         r.Loft,
			KidsRoom:     r.KidsRoom,
			Shape:        r.Shape,
			Accessories:  r.Accessories,
		}
	}
	if w.Estimate != nil {
		total := w.Estimate.Total
		res.EstimateTotal = &total
	}
	if w.Commercials != nil {
		ce := FromCommercialEstimate(*w.Commercials)
		res.CommercialEstimate = &ce
	}
	return res
}

// SummaryResponse is the public result: the total only.
type SummaryResponse struct {
	SessionID   string  `json:"session_id"`
	ProjectType string  `json:"project_type"`
	Package     string  `json:"package,omitempty"`
	Total       float64 `json:"total"`
}

func FromWizardSummary(s wizard.Session) SummaryResponse {
	w := s.Wizard
	res := SummaryResponse{SessionID: s.ID, ProjectType: string(w.ProjectType)}
	switch {
	case w.Estimate != nil && w.ProjectType != entities.ProjectTypeCommercial:
		res.Package = w.Estimate.Package
		res.Total = w.Estimate.Total
	case w.Commercials != nil:
		res.Total = w.Commercials.Total
	}
	return res
}
