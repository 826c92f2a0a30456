package request

import (
	"encoding/json"
	"errors"
	"testing"

	"interior_estimator/internal/domain/entities"
)

func TestRoomPatchRequest_ToPatch(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantArea  *float64
		wantClear bool
	}{
		{"number", `{"area":120.5}`, ptr(120.5), false},
		{"numeric text", `{"area":" 80 "}`, ptr(80), false},
		{"text", `{"area":"big"}`, nil, true},
		{"empty text", `{"area":""}`, nil, true},
		{"null", `{"area":null}`, nil, true},
		{"nan text", `{"area":"NaN"}`, nil, true},
		{"absent", `{"loft":true}`, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r RoomPatchRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			p := r.ToPatch()
			if p.ClearArea != tc.wantClear {
				t.Fatalf("expected ClearArea=%v, got %v", tc.wantClear, p.ClearArea)
			}
			switch {
			case tc.wantArea == nil && p.Area != nil:
				t.Fatalf("expected no area, got %v", *p.Area)
			case tc.wantArea != nil && (p.Area == nil || *p.Area != *tc.wantArea):
				t.Fatalf("expected area %v, got %v", *tc.wantArea, p.Area)
			}
		})
	}
}

func TestCalculateRequest_ToRoomConfiguration(t *testing.T) {
	var r CalculateRequest
	body := `{"rooms":{"bedroom_1":{"area":120,"false_ceiling":true,"accessories":{"Wardrobe":2}},"kitchen_1":{"area":"60","loft":true}},"package":"comfort"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := r.ToRoomConfiguration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bed := cfg.Rooms["bedroom_1"]
	if bed.RoomType != entities.RoomTypeBedroom || !bed.FalseCeiling || bed.Accessories["Wardrobe"] != 2 {
		t.Fatalf("unexpected bedroom: %+v", bed)
	}
	if k := cfg.Rooms["kitchen_1"]; !k.Loft || k.Area == nil || *k.Area != 60 {
		t.Fatalf("unexpected kitchen: %+v", k)
	}

	bad := CalculateRequest{Rooms: map[string]RoomPatchRequest{"bedroom": {}}}
	if _, err := bad.ToRoomConfiguration(); !errors.Is(err, ErrInvalidRoomPayload) || !errors.Is(err, entities.ErrInvalidRoomKey) {
		t.Fatalf("expected invalid room key, got %v", err)
	}
}

func ptr(v float64) *float64 { return &v }
