package response

import (
	"sort"

	"interior_estimator/internal/domain/entities"
)

type LineItemResponse struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// EstimateResponse is the priced breakdown. Lines are sorted by key.
type EstimateResponse struct {
	Package   string             `json:"package"`
	Total     float64            `json:"total"`
	Breakdown []LineItemResponse `json:"breakdown"`
}

func FromEstimateResult(r entities.EstimateResult) EstimateResponse {
	keys := make([]string, 0, len(r.Breakdown))
	for k := range r.Breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]LineItemResponse, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, LineItemResponse{Key: k, Amount: r.Breakdown[k]})
	}
	return EstimateResponse{Package: r.Package, Total: r.Total, Breakdown: lines}
}

type CommercialEstimateResponse struct {
	SpaceType          string  `json:"space_type"`
	AreaBucket         string  `json:"area_bucket"`
	BasePricePerSqFt   float64 `json:"base_price_per_sqft"`
	RepresentativeArea float64 `json:"representative_area"`
	Total              float64 `json:"total"`
}

func FromCommercialEstimate(e entities.CommercialEstimate) CommercialEstimateResponse {
	return CommercialEstimateResponse(e)
}
