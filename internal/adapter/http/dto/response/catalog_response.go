package response

import "interior_estimator/internal/domain/entities"

type CatalogResponse struct {
	RoomBasePrice     map[entities.RoomType]float64            `json:"room_base_price"`
	AccessoryPrice    map[entities.RoomType]map[string]float64 `json:"accessory_price"`
	FeaturePrice      map[string]float64                       `json:"feature_price"`
	PackageMultiplier map[string]float64                       `json:"package_multiplier"`
	Packages          []string                                 `json:"packages"`
}

func FromCatalog(c entities.PriceCatalog) CatalogResponse {
	return CatalogResponse{
		RoomBasePrice:     c.RoomBasePrice,
		AccessoryPrice:    c.AccessoryPrice,
		FeaturePrice:      c.FeaturePrice,
		PackageMultiplier: c.PackageMultiplier,
		Packages:          c.Packages(),
	}
}

type AccessoriesResponse struct {
	RoomType    string   `json:"room_type"`
	KidsRoom    bool     `json:"kids_room"`
	Accessories []string `json:"accessories"`
}

type PriceTableResponse struct {
	Table   string                 `json:"table"`
	Records []entities.PriceRecord `json:"records"`
}
