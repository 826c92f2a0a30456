package interfaces

import (
	"context"

	"interior_estimator/internal/domain/entities"
)

// IPriceSource reads the raw pricing tables.
//
// Implementations: DynamoDB tables, a remote pricing API and a YAML seed file.
// An empty table is not an error.
type IPriceSource interface {
	FetchRoomPrices(ctx context.Context) ([]entities.PriceRecord, error)
	FetchAccessoryPrices(ctx context.Context) ([]entities.PriceRecord, error)
	FetchFeaturePrices(ctx context.Context) ([]entities.PriceRecord, error)
	FetchPackages(ctx context.Context) ([]entities.PriceRecord, error)
}
