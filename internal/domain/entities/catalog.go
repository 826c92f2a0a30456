package entities

import (
	"math"
	"sort"
	"strings"
)

// RoomType identifies a kind of room, and doubles as an accessory price scope.
type RoomType string

const (
	RoomTypeLivingRoom RoomType = "livingRoom"
	RoomTypeBedroom    RoomType = "bedroom"
	RoomTypeKitchen    RoomType = "kitchen"
	RoomTypeBathroom   RoomType = "bathroom"
	RoomTypeDining     RoomType = "dining"

	// AccessoryScopeKids supplements bedroom accessories for kids' rooms.
	AccessoryScopeKids RoomType = "kids"
)

// RoomTypes lists the residential room kinds in layout order.
var RoomTypes = []RoomType{
	RoomTypeLivingRoom,
	RoomTypeBedroom,
	RoomTypeKitchen,
	RoomTypeBathroom,
	RoomTypeDining,
}

const (
	FeatureFalseCeiling = "falseCeiling"
	FeatureLoft         = "loft"
	shapeFeaturePrefix  = "Shape: "

	DefaultPackage = "essential"
)

var roomTypeAliases = map[string]RoomType{
	"livingroom": RoomTypeLivingRoom,
	"living":     RoomTypeLivingRoom,
	"hall":       RoomTypeLivingRoom,
	"bedroom":    RoomTypeBedroom,
	"kitchen":    RoomTypeKitchen,
	"bathroom":   RoomTypeBathroom,
	"dining":     RoomTypeDining,
	"diningroom": RoomTypeDining,
	"kids":       AccessoryScopeKids,
	"kidsroom":   AccessoryScopeKids,
}

// NormalizeRoomType maps loose spellings ("Living Room", "living_room") onto
// the canonical room type. Unknown names are returned trimmed.
func NormalizeRoomType(raw string) RoomType {
	trimmed := strings.TrimSpace(raw)
	folded := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(trimmed))
	if rt, ok := roomTypeAliases[folded]; ok {
		return rt
	}
	return RoomType(trimmed)
}

// NormalizePackageName lower-cases and trims a package name.
func NormalizePackageName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ShapeFeatureName returns the feature price key for a shape option.
func ShapeFeatureName(shape string) string {
	return shapeFeaturePrefix + shape
}

// PriceCatalog holds the four normalized price tables used by the estimator.
// A catalog is treated as immutable once loaded.
type PriceCatalog struct {
	RoomBasePrice     map[RoomType]float64            `json:"room_base_price"`
	AccessoryPrice    map[RoomType]map[string]float64 `json:"accessory_price"`
	FeaturePrice      map[string]float64              `json:"feature_price"`
	PackageMultiplier map[string]float64              `json:"package_multiplier"`
}

func NewPriceCatalog() PriceCatalog {
	return PriceCatalog{
		RoomBasePrice:     map[RoomType]float64{},
		AccessoryPrice:    map[RoomType]map[string]float64{},
		FeaturePrice:      map[string]float64{},
		PackageMultiplier: map[string]float64{},
	}
}

// Feature returns the price for a feature, or 0 when absent.
func (c PriceCatalog) Feature(name string) float64 {
	return finiteOrZero(c.FeaturePrice[name])
}

// Accessory returns the price of an accessory in a given scope, or 0 when absent.
func (c PriceCatalog) Accessory(scope RoomType, name string) float64 {
	return finiteOrZero(c.AccessoryPrice[scope][name])
}

// Multiplier returns the package factor. Unknown or non-positive factors
// resolve to 1.
func (c PriceCatalog) Multiplier(pkg string) float64 {
	m, ok := c.PackageMultiplier[NormalizePackageName(pkg)]
	if !ok || math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 1
	}
	return m
}

func (c PriceCatalog) HasPackage(pkg string) bool {
	_, ok := c.PackageMultiplier[NormalizePackageName(pkg)]
	return ok
}

// Packages returns the known package names, sorted.
func (c PriceCatalog) Packages() []string {
	return sortedKeys(c.PackageMultiplier)
}

// ListAccessoriesFor returns the accessory names offered for a room type.
// Kids-scoped names are appended for kids' bedrooms without deduplication.
func (c PriceCatalog) ListAccessoriesFor(roomType RoomType, isKidsRoom bool) []string {
	names := sortedKeys(c.AccessoryPrice[roomType])
	if roomType == RoomTypeBedroom && isKidsRoom {
		names = append(names, sortedKeys(c.AccessoryPrice[AccessoryScopeKids])...)
	}
	return names
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
