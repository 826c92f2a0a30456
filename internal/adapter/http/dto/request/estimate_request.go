package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"interior_estimator/internal/domain/entities"
)

var ErrInvalidRoomPayload = errors.New("invalid room payload")

// RoomPatchRequest is a partial room edit. Area may be a number or numeric
// text; anything else (including null or "") clears the area.
type RoomPatchRequest struct {
	Area         json.RawMessage `json:"area,omitempty" swaggertype:"number"`
	FalseCeiling *bool           `json:"false_ceiling,omitempty"`
	Loft         *bool           `json:"loft,omitempty"`
	KidsRoom     *bool           `json:"kids_room,omitempty"`
	Shape        *string         `json:"shape,omitempty"`
	Accessories  map[string]int  `json:"accessories,omitempty"`
}

func (r RoomPatchRequest) ToPatch() entities.RoomInstancePatch {
	patch := entities.RoomInstancePatch{
		FalseCeiling: r.FalseCeiling,
		Loft:         r.Loft,
		KidsRoom:     r.KidsRoom,
		Shape:        r.Shape,
		Accessories:  r.Accessories,
	}
	if len(r.Area) == 0 {
		return patch
	}
	if area, ok := parseArea(r.Area); ok {
		patch.Area = &area
	} else {
		patch.ClearArea = true
	}
	return patch
}

func parseArea(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if v, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CalculateRequest prices a room configuration without a session.
type CalculateRequest struct {
	Rooms   map[string]RoomPatchRequest `json:"rooms" binding:"required"`
	Package string                      `json:"package"`
}

func (r CalculateRequest) ToRoomConfiguration() (entities.RoomConfiguration, error) {
	cfg := entities.NewRoomConfiguration()
	for key, room := range r.Rooms {
		if err := cfg.SetRoomInstance(strings.TrimSpace(key), room.ToPatch()); err != nil {
			return entities.RoomConfiguration{}, fmt.Errorf("%w: %w", ErrInvalidRoomPayload, err)
		}
	}
	return cfg, nil
}

// CommercialQuoteRequest prices the commercial formula without a session.
type CommercialQuoteRequest struct {
	SpaceType  string `json:"space_type" binding:"required"`
	AreaBucket string `json:"area_bucket" binding:"required"`
}

func (r CommercialQuoteRequest) ToForm() entities.CommercialForm {
	return entities.CommercialForm{SpaceType: r.SpaceType, AreaBucket: r.AreaBucket}
}
