package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCatalogUnavailable = errors.New("price catalog unavailable")
	ErrUnknownPriceTable  = errors.New("unknown price table")
)

// Column names accepted per table; the first one present wins.
var (
	roomNameKeys       = []string{"room_type", "type", "name"}
	roomPriceKeys      = []string{"price", "base_price", "cost"}
	accessoryScopeKeys = []string{"room_type", "type", "category"}
	accessoryNameKeys  = []string{"accessory", "accessory_name", "name"}
	accessoryPriceKeys = []string{"price", "cost"}
	featureNameKeys    = []string{"feature", "feature_name", "name"}
	featurePriceKeys   = []string{"price", "cost"}
	packageNameKeys    = []string{"package", "package_name", "name"}
	packageFactorKeys  = []string{"multiplier", "factor", "price"}
)

// ICatalogUseCase loads the price catalog and exposes the raw tables.
type ICatalogUseCase interface {
	Load(ctx context.Context) (entities.PriceCatalog, error)
	Table(ctx context.Context, table entities.PriceTable) ([]entities.PriceRecord, error)
	ListAccessoriesFor(ctx context.Context, roomType string, isKidsRoom bool) ([]string, error)
}

type CatalogUseCase struct {
	source interfaces.IPriceSource
	log    *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.IPriceSource, log *zap.Logger) *CatalogUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogUseCase{source: source, log: log}
}

// Load fetches the four tables concurrently. The first failure cancels the
// others and no partial catalog is returned.
func (u *CatalogUseCase) Load(ctx context.Context) (entities.PriceCatalog, error) {
	var rooms, accessories, features, packages []entities.PriceRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rooms, err = u.source.FetchRoomPrices(gctx)
		return wrapTable(entities.PriceTableRooms, err)
	})
	g.Go(func() (err error) {
		accessories, err = u.source.FetchAccessoryPrices(gctx)
		return wrapTable(entities.PriceTableAccessories, err)
	})
	g.Go(func() (err error) {
		features, err = u.source.FetchFeaturePrices(gctx)
		return wrapTable(entities.PriceTableFeatures, err)
	})
	g.Go(func() (err error) {
		packages, err = u.source.FetchPackages(gctx)
		return wrapTable(entities.PriceTablePackages, err)
	})
	if err := g.Wait(); err != nil {
		u.log.Error("price catalog load failed", zap.Error(err))
		return entities.PriceCatalog{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	c := entities.NewPriceCatalog()
	u.reduceRooms(c, rooms)
	u.reduceAccessories(c, accessories)
	u.reduceFeatures(c, features)
	u.reducePackages(c, packages)

	u.log.Debug("price catalog loaded",
		zap.Int("rooms", len(c.RoomBasePrice)),
		zap.Int("accessory_scopes", len(c.AccessoryPrice)),
		zap.Int("features", len(c.FeaturePrice)),
		zap.Int("packages", len(c.PackageMultiplier)),
	)
	return c, nil
}

func (u *CatalogUseCase) Table(ctx context.Context, table entities.PriceTable) ([]entities.PriceRecord, error) {
	var (
		records []entities.PriceRecord
		err     error
	)
	switch table {
	case entities.PriceTableRooms:
		records, err = u.source.FetchRoomPrices(ctx)
	case entities.PriceTableAccessories:
		records, err = u.source.FetchAccessoryPrices(ctx)
	case entities.PriceTableFeatures:
		records, err = u.source.FetchFeaturePrices(ctx)
	case entities.PriceTablePackages:
		records, err = u.source.FetchPackages(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPriceTable, table)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, wrapTable(table, err))
	}
	if records == nil {
		records = []entities.PriceRecord{}
	}
	return records, nil
}

func (u *CatalogUseCase) ListAccessoriesFor(ctx context.Context, roomType string, isKidsRoom bool) ([]string, error) {
	c, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListAccessoriesFor(entities.NormalizeRoomType(roomType), isKidsRoom), nil
}

func (u *CatalogUseCase) reduceRooms(c entities.PriceCatalog, records []entities.PriceRecord) {
	for _, rec := range records {
		name := pickText(rec, roomNameKeys...)
		if name == "" {
			u.dropped(entities.PriceTableRooms, rec)
			continue
		}
		c.RoomBasePrice[entities.NormalizeRoomType(name)] = parsePrice(pick(rec, roomPriceKeys...))
	}
}

func (u *CatalogUseCase) reduceAccessories(c entities.PriceCatalog, records []entities.PriceRecord) {
	for _, rec := range records {
		scope := pickText(rec, accessoryScopeKeys...)
		name := pickText(rec, accessoryNameKeys...)
		if scope == "" || name == "" {
			u.dropped(entities.PriceTableAccessories, rec)
			continue
		}
		rt := entities.NormalizeRoomType(scope)
		if c.AccessoryPrice[rt] == nil {
			c.AccessoryPrice[rt] = map[string]float64{}
		}
		c.AccessoryPrice[rt][name] = parsePrice(pick(rec, accessoryPriceKeys...))
	}
}

func (u *CatalogUseCase) reduceFeatures(c entities.PriceCatalog, records []entities.PriceRecord) {
	for _, rec := range records {
		name := pickText(rec, featureNameKeys...)
		if name == "" {
			u.dropped(entities.PriceTableFeatures, rec)
			continue
		}
		c.FeaturePrice[name] = parsePrice(pick(rec, featurePriceKeys...))
	}
}

func (u *CatalogUseCase) reducePackages(c entities.PriceCatalog, records []entities.PriceRecord) {
	for _, rec := range records {
		name := entities.NormalizePackageName(pickText(rec, packageNameKeys...))
		if name == "" {
			u.dropped(entities.PriceTablePackages, rec)
			continue
		}
		c.PackageMultiplier[name] = parsePrice(pick(rec, packageFactorKeys...))
	}
}

func (u *CatalogUseCase) dropped(table entities.PriceTable, rec entities.PriceRecord) {
	u.log.Warn("dropping price record without a usable name",
		zap.String("table", string(table)),
		zap.Any("record", rec),
	)
}

func wrapTable(table entities.PriceTable, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("fetch %s: %w", table, err)
}

func pick(rec entities.PriceRecord, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func pickText(rec entities.PriceRecord, keys ...string) string {
	switch v := pick(rec, keys...).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// parsePrice reads a number or numeric text. Anything unparseable or
// non-finite is 0.
func parsePrice(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		f, _ = n.Float64()
	case string:
		s := strings.NewReplacer(",", "", "₹", "", " ", "").Replace(strings.TrimSpace(n))
		f, _ = strconv.ParseFloat(s, 64)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
