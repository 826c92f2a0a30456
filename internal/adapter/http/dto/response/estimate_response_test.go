package response

import (
	"testing"

	"interior_estimator/internal/domain/entities"
)

func TestFromEstimateResult(t *testing.T) {
	res := FromEstimateResult(entities.EstimateResult{
		Total:   300,
		Package: "comfort",
		Breakdown: map[string]float64{
			"kitchen_1_loft":         100,
			"bedroom_1_falseCeiling": 200,
		},
	})

	if res.Total != 300 || res.Package != "comfort" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Breakdown) != 2 || res.Breakdown[0].Key != "bedroom_1_falseCeiling" || res.Breakdown[1].Amount != 100 {
		t.Fatalf("expected sorted lines, got %+v", res.Breakdown)
	}

	empty := FromEstimateResult(entities.EstimateResult{})
	if empty.Breakdown == nil {
		t.Fatalf("expected empty, non-nil breakdown")
	}
}

func TestFromCommercialEstimate(t *testing.T) {
	res := FromCommercialEstimate(entities.CommercialEstimate{SpaceType: "office", AreaBucket: "0-500", BasePricePerSqFt: 1200, RepresentativeArea: 250, Total: 300000})
	if res.Total != 300000 || res.SpaceType != "office" || res.RepresentativeArea != 250 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
