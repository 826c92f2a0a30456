package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"interior_estimator/internal/domain/entities"
	mock_interfaces "interior_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func expectTables(src *mock_interfaces.MockIPriceSource, rooms, accessories, features, packages []entities.PriceRecord) {
	src.EXPECT().FetchRoomPrices(gomock.Any()).Return(rooms, nil)
	src.EXPECT().FetchAccessoryPrices(gomock.Any()).Return(accessories, nil)
	src.EXPECT().FetchFeaturePrices(gomock.Any()).Return(features, nil)
	src.EXPECT().FetchPackages(gomock.Any()).Return(packages, nil)
}

func TestCatalogUseCase_Load(t *testing.T) {
	t.Run("normalizes every table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIPriceSource(ctrl)
		uc := NewCatalogUseCase(src, nil)

		expectTables(src,
			[]entities.PriceRecord{
				{"room_type": "Living Room", "price": "1,200"},
				{"type": "bedroom", "base_price": 900.0},
				{"name": "kitchen", "cost": "oops"},
				{"price": 10.0},
			},
			[]entities.PriceRecord{
				{"room_type": "bedroom", "accessory": "Wardrobe", "price": 15000},
				{"category": "Kids", "accessory_name": "Study Table", "cost": "4500"},
				{"room_type": "bedroom"},
			},
			[]entities.PriceRecord{
				{"feature": "falseCeiling", "price": 15.0},
				{"feature_name": "Shape: L-shaped", "cost": json.Number("50")},
				{"name": "loft", "price": math.NaN()},
			},
			[]entities.PriceRecord{
				{"package": " Comfort ", "multiplier": "1.3"},
				{"package_name": "luxury", "factor": 1.6},
				{"name": "essential", "price": 1},
			},
		)

		c, err := uc.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantRooms := map[entities.RoomType]float64{"livingRoom": 1200, "bedroom": 900, "kitchen": 0}
		if !reflect.DeepEqual(c.RoomBasePrice, wantRooms) {
			t.Fatalf("unexpected rooms: %v", c.RoomBasePrice)
		}
		if c.AccessoryPrice["bedroom"]["Wardrobe"] != 15000 || c.AccessoryPrice["kids"]["Study Table"] != 4500 {
			t.Fatalf("unexpected accessories: %v", c.AccessoryPrice)
		}
		if len(c.AccessoryPrice["bedroom"]) != 1 {
			t.Fatalf("expected nameless accessory to be dropped: %v", c.AccessoryPrice["bedroom"])
		}
		if c.FeaturePrice["falseCeiling"] != 15 || c.FeaturePrice["Shape: L-shaped"] != 50 || c.FeaturePrice["loft"] != 0 {
			t.Fatalf("unexpected features: %v", c.FeaturePrice)
		}
		wantPkgs := map[string]float64{"comfort": 1.3, "luxury": 1.6, "essential": 1}
		if !reflect.DeepEqual(c.PackageMultiplier, wantPkgs) {
			t.Fatalf("unexpected packages: %v", c.PackageMultiplier)
		}
	})

	t.Run("empty tables give an empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIPriceSource(ctrl)
		uc := NewCatalogUseCase(src, nil)

		expectTables(src, nil, nil, nil, nil)

		c, err := uc.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.RoomBasePrice == nil || len(c.PackageMultiplier) != 0 {
			t.Fatalf("expected empty initialized catalog, got %+v", c)
		}
	})

	t.Run("one failing table fails the whole load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIPriceSource(ctrl)
		uc := NewCatalogUseCase(src, nil)

		src.EXPECT().FetchRoomPrices(gomock.Any()).Return([]entities.PriceRecord{{"room_type": "bedroom", "price": 1}}, nil).AnyTimes()
		src.EXPECT().FetchAccessoryPrices(gomock.Any()).Return(nil, nil).AnyTimes()
		src.EXPECT().FetchFeaturePrices(gomock.Any()).Return(nil, errors.New("throttled"))
		src.EXPECT().FetchPackages(gomock.Any()).Return(nil, nil).AnyTimes()

		c, err := uc.Load(context.Background())
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
		if c.RoomBasePrice != nil {
			t.Fatalf("expected no partial catalog, got %+v", c)
		}
	})
}

func TestCatalogUseCase_Table(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.Table(context.Background(), "colors")
		if !errors.Is(err, ErrUnknownPriceTable) {
			t.Fatalf("expected ErrUnknownPriceTable, got %v", err)
		}
	})

	t.Run("nil records become empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIPriceSource(ctrl)
		uc := NewCatalogUseCase(src, nil)

		src.EXPECT().FetchPackages(gomock.Any()).Return(nil, nil)

		recs, err := uc.Table(context.Background(), entities.PriceTablePackages)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recs == nil || len(recs) != 0 {
			t.Fatalf("expected empty slice, got %v", recs)
		}
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIPriceSource(ctrl)
		uc := NewCatalogUseCase(src, nil)

		src.EXPECT().FetchRoomPrices(gomock.Any()).Return(nil, errors.New("down"))

		_, err := uc.Table(context.Background(), entities.PriceTableRooms)
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})
}

func TestCatalogUseCase_ListAccessoriesFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := mock_interfaces.NewMockIPriceSource(ctrl)
	uc := NewCatalogUseCase(src, nil)

	expectTables(src, nil,
		[]entities.PriceRecord{
			{"room_type": "bedroom", "accessory": "Wardrobe", "price": 1},
			{"room_type": "bedroom", "accessory": "Bed", "price": 1},
			{"room_type": "kids", "accessory": "Bunk Bed", "price": 1},
			{"room_type": "kids", "accessory": "Wardrobe", "price": 1},
		}, nil, nil)

	got, err := uc.ListAccessoriesFor(context.Background(), "Bedroom", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Bed", "Wardrobe", "Bunk Bed", "Wardrobe"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{12.5, 12.5},
		{float32(2), 2},
		{7, 7},
		{int64(9), 9},
		{json.Number("3.25"), 3.25},
		{" 1,500 ", 1500},
		{"₹ 250", 250},
		{"abc", 0},
		{"NaN", 0},
		{math.Inf(1), 0},
		{nil, 0},
		{true, 0},
	}
	for _, tc := range cases {
		if got := parsePrice(tc.in); got != tc.want {
			t.Fatalf("parsePrice(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
