package entities

// PriceRecord is one raw row of a pricing table as the source returns it.
// Column names vary between sources; the catalog loader picks what it knows.
type PriceRecord map[string]any

// PriceTable identifies one of the four pricing tables.
type PriceTable string

const (
	PriceTableRooms       PriceTable = "rooms"
	PriceTableAccessories PriceTable = "accessories"
	PriceTableFeatures    PriceTable = "features"
	PriceTablePackages    PriceTable = "packages"
)

// PriceTables lists the tables in load order.
var PriceTables = []PriceTable{PriceTableRooms, PriceTableAccessories, PriceTableFeatures, PriceTablePackages}
