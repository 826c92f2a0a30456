package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrMissingPricingAPIBaseURL = errors.New("missing PRICING_API_BASE_URL")

var tablePaths = map[entities.PriceTable]string{
	entities.PriceTableRooms:       "/rooms",
	entities.PriceTableAccessories: "/accessories",
	entities.PriceTableFeatures:    "/features",
	entities.PriceTablePackages:    "/packages",
}

// HTTPPriceSource reads the pricing tables from a remote pricing API.
// Each table is a GET returning either a JSON array of rows or {"data": [...]}.
type HTTPPriceSource struct {
	client *resty.Client
	log    *zap.Logger
}

var _ interfaces.IPriceSource = (*HTTPPriceSource)(nil)

func NewHTTPPriceSource(baseURL string, timeout time.Duration, log *zap.Logger) (*HTTPPriceSource, error) {
	if baseURL == "" {
		return nil, ErrMissingPricingAPIBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Accept", "application/json")

	return &HTTPPriceSource{client: client, log: log}, nil
}

func (s *HTTPPriceSource) FetchRoomPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return s.fetch(ctx, entities.PriceTableRooms)
}

func (s *HTTPPriceSource) FetchAccessoryPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return s.fetch(ctx, entities.PriceTableAccessories)
}

func (s *HTTPPriceSource) FetchFeaturePrices(ctx context.Context) ([]entities.PriceRecord, error) {
	return s.fetch(ctx, entities.PriceTableFeatures)
}

func (s *HTTPPriceSource) FetchPackages(ctx context.Context) ([]entities.PriceRecord, error) {
	return s.fetch(ctx, entities.PriceTablePackages)
}

func (s *HTTPPriceSource) fetch(ctx context.Context, table entities.PriceTable) ([]entities.PriceRecord, error) {
	path := tablePaths[table]
	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		s.log.Error("pricing API call failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	if resp.IsError() {
		s.log.Error("pricing API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("get %s: status %d", path, resp.StatusCode())
	}

	records, err := decodeRecords(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	s.log.Debug("pricing table fetched", zap.String("path", path), zap.Int("rows", len(records)))
	return records, nil
}

func decodeRecords(body []byte) ([]entities.PriceRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []entities.PriceRecord{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if body[0] == '[' {
		var rows []entities.PriceRecord
		if err := dec.Decode(&rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var envelope struct {
		Data []entities.PriceRecord `json:"data"`
	}
	if err := dec.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []entities.PriceRecord{}, nil
	}
	return envelope.Data, nil
}
