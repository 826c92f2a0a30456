// Package pricing turns a room configuration into a priced estimate.
//
// Every function here is pure: the same catalog, configuration and package
// always yield the same result, and missing prices degrade to a zero
// contribution instead of an error.
package pricing

import (
	"math"
	"sort"

	"interior_estimator/internal/domain/entities"
)

const (
	labelFalseCeiling = "falseCeiling"
	labelLoft         = "loft"
	labelShape        = "shape"

	// accessoryLabelPrefix keeps accessory lines apart from feature lines of
	// the same room.
	accessoryLabelPrefix = "accessory:"

	// loftCoverage is the share of the room area a loft covers.
	loftCoverage = 0.25
)

var shapeAreaFactor = map[string]float64{
	"L-shaped": 1.5,
	"U-shaped": 2.0,
	"Parallel": 1.75,
}

// ShapeAreaFactor returns the area multiplier of a shape; unknown or empty
// shapes do not scale the area.
func ShapeAreaFactor(shape string) float64 {
	if f, ok := shapeAreaFactor[shape]; ok {
		return f
	}
	return 1
}

// Calculator is the signature injected into the wizard.
type Calculator func(catalog entities.PriceCatalog, rooms entities.RoomConfiguration, pkg string) entities.EstimateResult

var _ Calculator = Calculate

// Calculate prices every configured room and scales the result once by the
// package multiplier.
func Calculate(catalog entities.PriceCatalog, rooms entities.RoomConfiguration, pkg string) entities.EstimateResult {
	breakdown := map[string]float64{}
	total := 0.0

	add := func(key string, amount float64) {
		if amount == 0 || !isFinite(amount) {
			return
		}
		breakdown[key] += amount
		total += amount
	}

	// Sorted keys keep the float summation order stable across calls.
	for _, roomKey := range rooms.Keys() {
		inst := rooms.Rooms[roomKey]
		area, ok := inst.ValidArea()
		if !ok {
			continue
		}
		prefix := roomKey + "_"

		if inst.FalseCeiling {
			add(prefix+labelFalseCeiling, catalog.Feature(entities.FeatureFalseCeiling)*area)
		}
		if inst.Loft && inst.RoomType == entities.RoomTypeKitchen {
			add(prefix+labelLoft, catalog.Feature(entities.FeatureLoft)*area*loftCoverage)
		}

		if inst.Shape != "" {
			effectiveArea := area * ShapeAreaFactor(inst.Shape)
			add(prefix+labelShape, catalog.Feature(entities.ShapeFeatureName(inst.Shape))*effectiveArea)
		}

		for _, name := range sortedAccessoryNames(inst.Accessories) {
			qty := inst.Accessories[name]
			if qty <= 0 {
				continue
			}
			add(prefix+accessoryLabel(name), accessoryPrice(catalog, inst, name)*float64(qty))
		}
	}

	multiplier := catalog.Multiplier(pkg)
	for key, amount := range breakdown {
		scaled := amount * multiplier
		if !isFinite(scaled) {
			delete(breakdown, key)
			continue
		}
		breakdown[key] = scaled
	}
	total *= multiplier

	if !isFinite(total) || total < 0 {
		total = 0
	}

	return entities.EstimateResult{
		Total:     total,
		Breakdown: breakdown,
		Package:   entities.NormalizePackageName(pkg),
	}
}

// accessoryLabel is the breakdown label of an accessory line.
func accessoryLabel(name string) string {
	return accessoryLabelPrefix + name
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// accessoryPrice looks the accessory up in the room's own scope first; kids'
// bedrooms fall back to the kids scope when that price is absent or zero.
func accessoryPrice(catalog entities.PriceCatalog, inst entities.RoomInstance, name string) float64 {
	price := catalog.Accessory(inst.RoomType, name)
	if price == 0 && inst.RoomType == entities.RoomTypeBedroom && inst.KidsRoom {
		price = catalog.Accessory(entities.AccessoryScopeKids, name)
	}
	return price
}

func sortedAccessoryNames(acc map[string]int) []string {
	names := make([]string, 0, len(acc))
	for name := range acc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
