package repository

import (
	"context"
	"fmt"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/infrastructure/config"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PriceDynamoRepository reads the four pricing tables.
//
// The tables are small and read-only for this service, so every fetch is a
// full paginated Scan. Items are returned as plain maps; the catalog loader
// decides which attributes matter.
type PriceDynamoRepository struct {
	ddb    dynamodb.ScanAPIClient
	tables config.PriceTables
}

var _ interfaces.IPriceSource = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb dynamodb.ScanAPIClient, tables config.PriceTables) *PriceDynamoRepository {
	return &PriceDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PriceDynamoRepository) FetchRoomPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return r.scan(ctx, r.tables.Rooms)
}

func (r *PriceDynamoRepository) FetchAccessoryPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return r.scan(ctx, r.tables.Accessories)
}

func (r *PriceDynamoRepository) FetchFeaturePrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return r.scan(ctx, r.tables.Features)
}

func (r *PriceDynamoRepository) FetchPackages(ctx context.Context) ([]entities.PriceRecord, error) {
	return r.scan(ctx, r.tables.Packages)
}

func (r *PriceDynamoRepository) scan(ctx context.Context, table string) ([]entities.PriceRecord, error) {
	pages := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})

	records := []entities.PriceRecord{}
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var rows []map[string]any
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", table, err)
		}
		for _, row := range rows {
			records = append(records, entities.PriceRecord(row))
		}
	}
	return records, nil
}
