package pricing

import (
	"sort"
	"strings"

	"interior_estimator/internal/domain/entities"
)

// Per square foot base prices of the commercial flow.
var commercialBasePrice = map[string]float64{
	"office":     1200,
	"retail":     1400,
	"restaurant": 1800,
	"clinic":     1600,
}

// Each area bucket is priced at a representative area. The open-ended top
// bucket uses its lower bound.
var commercialAreaBuckets = map[string]float64{
	"0-500":     250,
	"500-1000":  750,
	"1000-2000": 1500,
	"2000+":     2000,
}

// CommercialSpaceTypes lists the supported commercial space types, sorted.
func CommercialSpaceTypes() []string {
	return sortedFloatKeys(commercialBasePrice)
}

// CommercialAreaBuckets lists the supported area buckets, sorted.
func CommercialAreaBuckets() []string {
	return sortedFloatKeys(commercialAreaBuckets)
}

// IsCommercialSpaceType reports whether the space type has a base price.
func IsCommercialSpaceType(spaceType string) bool {
	_, ok := commercialBasePrice[strings.ToLower(strings.TrimSpace(spaceType))]
	return ok
}

// IsCommercialAreaBucket reports whether the bucket is known.
func IsCommercialAreaBucket(bucket string) bool {
	_, ok := commercialAreaBuckets[strings.TrimSpace(bucket)]
	return ok
}

// CalculateCommercial applies base price × representative bucket area.
// Unknown space types or buckets price at zero.
func CalculateCommercial(form entities.CommercialForm) entities.CommercialEstimate {
	spaceType := strings.ToLower(strings.TrimSpace(form.SpaceType))
	bucket := strings.TrimSpace(form.AreaBucket)

	base := commercialBasePrice[spaceType]
	area := commercialAreaBuckets[bucket]

	return entities.CommercialEstimate{
		SpaceType:          spaceType,
		AreaBucket:         bucket,
		BasePricePerSqFt:   base,
		RepresentativeArea: area,
		Total:              base * area,
	}
}

func sortedFloatKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
