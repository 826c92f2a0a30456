package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestResolveLayout(t *testing.T) {
	t.Run("fixed layout", func(t *testing.T) {
		layout := ResolveLayout(BhkSelection{Type: Bhk2})
		assert.Equal(t, 2, layout[RoomTypeBedroom])
		assert.Equal(t, 1, layout[RoomTypeKitchen])
		assert.Equal(t, 2, layout[RoomTypeBathroom])
	})

	t.Run("fixed layout is a copy", func(t *testing.T) {
		layout := ResolveLayout(BhkSelection{Type: Bhk1})
		layout[RoomTypeBedroom] = 9
		assert.Equal(t, 1, ResolveLayout(BhkSelection{Type: Bhk1})[RoomTypeBedroom])
	})

	t.Run("custom maps counts one to one", func(t *testing.T) {
		layout := ResolveLayout(BhkSelection{Type: BhkCustom, Custom: CustomRoomCounts{
			LivingRooms: 1, Bedrooms: 3, Kitchens: 2, Bathrooms: 0, Dinings: 1,
		}})
		assert.Equal(t, map[RoomType]int{
			RoomTypeLivingRoom: 1,
			RoomTypeBedroom:    3,
			RoomTypeKitchen:    2,
			RoomTypeBathroom:   0,
			RoomTypeDining:     1,
		}, layout)
	})

	t.Run("unknown and empty", func(t *testing.T) {
		assert.Empty(t, ResolveLayout(BhkSelection{}))
		assert.Empty(t, ResolveLayout(BhkSelection{Type: "9BHK"}))
	})
}

func TestBhkSelection_Validate(t *testing.T) {
	cases := []struct {
		name string
		sel  BhkSelection
		want error
	}{
		{"not selected", BhkSelection{}, ErrBhkNotSelected},
		{"unknown", BhkSelection{Type: "7BHK"}, ErrUnknownBhkType},
		{"fixed", BhkSelection{Type: Bhk3}, nil},
		{"custom all zero", BhkSelection{Type: BhkCustom}, ErrEmptyCustomLayout},
		{"custom negative", BhkSelection{Type: BhkCustom, Custom: CustomRoomCounts{Bedrooms: -1, Kitchens: 2}}, ErrNegativeRoomCount},
		{"custom one room", BhkSelection{Type: BhkCustom, Custom: CustomRoomCounts{Kitchens: 1}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sel.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLayoutRoomKeys(t *testing.T) {
	keys := LayoutRoomKeys(ResolveLayout(BhkSelection{Type: Bhk1}))
	assert.Equal(t, []string{"livingRoom_1", "bedroom_1", "kitchen_1", "bathroom_1"}, keys)
}

func TestParseRoomKey(t *testing.T) {
	rt, idx, err := ParseRoomKey("livingRoom_2")
	require.NoError(t, err)
	assert.Equal(t, RoomTypeLivingRoom, rt)
	assert.Equal(t, 2, idx)

	for _, bad := range []string{"", "bedroom", "_1", "bedroom_", "bedroom_x", "bedroom_0"} {
		_, _, err := ParseRoomKey(bad)
		assert.ErrorIs(t, err, ErrInvalidRoomKey, bad)
	}
}

func TestRoomConfiguration_SetRoomInstance(t *testing.T) {
	t.Run("merge keeps earlier fields", func(t *testing.T) {
		cfg := NewRoomConfiguration()
		require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{Area: ptr(120.0)}))
		require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{FalseCeiling: ptr(true)}))
		require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{Accessories: map[string]int{"Wardrobe": 1}}))
		require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{Accessories: map[string]int{"Study Table": 2}}))

		inst := cfg.Rooms["bedroom_1"]
		assert.Equal(t, RoomTypeBedroom, inst.RoomType)
		assert.Equal(t, 120.0, *inst.Area)
		assert.True(t, inst.FalseCeiling)
		assert.Equal(t, map[string]int{"Wardrobe": 1, "Study Table": 2}, inst.Accessories)
	})

	t.Run("zero quantity removes accessory", func(t *testing.T) {
		cfg := NewRoomConfiguration()
		require.NoError(t, cfg.SetRoomInstance("kitchen_1", RoomInstancePatch{Accessories: map[string]int{"Chimney": 1}}))
		require.NoError(t, cfg.SetRoomInstance("kitchen_1", RoomInstancePatch{Accessories: map[string]int{"Chimney": 0}}))
		assert.Empty(t, cfg.Rooms["kitchen_1"].Accessories)
	})

	t.Run("room specific flags", func(t *testing.T) {
		cfg := NewRoomConfiguration()
		require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{Loft: ptr(true), KidsRoom: ptr(true)}))
		require.NoError(t, cfg.SetRoomInstance("kitchen_1", RoomInstancePatch{Loft: ptr(true), KidsRoom: ptr(true)}))
		assert.False(t, cfg.Rooms["bedroom_1"].Loft)
		assert.True(t, cfg.Rooms["bedroom_1"].KidsRoom)
		assert.True(t, cfg.Rooms["kitchen_1"].Loft)
		assert.False(t, cfg.Rooms["kitchen_1"].KidsRoom)
	})

	t.Run("clear area", func(t *testing.T) {
		cfg := NewRoomConfiguration()
		require.NoError(t, cfg.SetRoomInstance("dining_1", RoomInstancePatch{Area: ptr(40.0)}))
		require.NoError(t, cfg.SetRoomInstance("dining_1", RoomInstancePatch{ClearArea: true}))
		assert.Nil(t, cfg.Rooms["dining_1"].Area)
	})

	t.Run("invalid key", func(t *testing.T) {
		cfg := NewRoomConfiguration()
		assert.ErrorIs(t, cfg.SetRoomInstance("bedroom", RoomInstancePatch{}), ErrInvalidRoomKey)
	})
}

func TestRoomConfiguration_IsConfigured(t *testing.T) {
	cfg := NewRoomConfiguration()
	assert.False(t, cfg.IsConfigured())

	require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{FalseCeiling: ptr(true)}))
	assert.False(t, cfg.IsConfigured())

	require.NoError(t, cfg.SetRoomInstance("bedroom_2", RoomInstancePatch{Area: ptr(0.0)}))
	require.NoError(t, cfg.SetRoomInstance("bedroom_3", RoomInstancePatch{Area: ptr(math.NaN())}))
	assert.Nil(t, cfg.Rooms["bedroom_3"].Area, "non-finite area is not stored")
	assert.False(t, cfg.IsConfigured())

	require.NoError(t, cfg.SetRoomInstance("bedroom_1", RoomInstancePatch{Area: ptr(10.0)}))
	assert.True(t, cfg.IsConfigured())

	cfg.RemoveRoomInstance("bedroom_1")
	assert.False(t, cfg.IsConfigured())
}

func TestRoomConfiguration_Prune(t *testing.T) {
	cfg := NewRoomConfiguration()
	for _, key := range []string{"bedroom_1", "bedroom_3", "kitchen_1", "dining_1"} {
		require.NoError(t, cfg.SetRoomInstance(key, RoomInstancePatch{Area: ptr(10.0)}))
	}
	cfg.Prune(ResolveLayout(BhkSelection{Type: Bhk1}))
	assert.Equal(t, []string{"bedroom_1", "kitchen_1"}, cfg.Keys())
}

func TestPriceCatalog_Lookups(t *testing.T) {
	c := NewPriceCatalog()
	c.AccessoryPrice[RoomTypeBedroom] = map[string]float64{"Wardrobe": 500, "Bed": 800}
	c.AccessoryPrice[AccessoryScopeKids] = map[string]float64{"Bunk Bed": 900, "Bed": 700}
	c.FeaturePrice[FeatureFalseCeiling] = math.NaN()
	c.PackageMultiplier["comfort"] = 1.3
	c.PackageMultiplier["broken"] = 0

	t.Run("accessories for a regular bedroom", func(t *testing.T) {
		assert.Equal(t, []string{"Bed", "Wardrobe"}, c.ListAccessoriesFor(RoomTypeBedroom, false))
	})

	t.Run("kids names are appended without dedup", func(t *testing.T) {
		assert.Equal(t, []string{"Bed", "Wardrobe", "Bed", "Bunk Bed"}, c.ListAccessoriesFor(RoomTypeBedroom, true))
	})

	t.Run("kids flag ignored outside bedrooms", func(t *testing.T) {
		assert.Empty(t, c.ListAccessoriesFor(RoomTypeKitchen, true))
	})

	t.Run("feature NaN reads as zero", func(t *testing.T) {
		assert.Equal(t, 0.0, c.Feature(FeatureFalseCeiling))
		assert.Equal(t, 0.0, c.Feature("missing"))
	})

	t.Run("multiplier defaults", func(t *testing.T) {
		assert.Equal(t, 1.3, c.Multiplier(" Comfort "))
		assert.Equal(t, 1.0, c.Multiplier("luxury"))
		assert.Equal(t, 1.0, c.Multiplier("broken"))
		assert.True(t, c.HasPackage("COMFORT"))
		assert.Equal(t, []string{"broken", "comfort"}, c.Packages())
	})
}

func TestNormalizeRoomType(t *testing.T) {
	cases := map[string]RoomType{
		"Living Room": RoomTypeLivingRoom,
		"living_room": RoomTypeLivingRoom,
		"livingRoom":  RoomTypeLivingRoom,
		" Bedroom ":   RoomTypeBedroom,
		"Dining Room": RoomTypeDining,
		"KIDS":        AccessoryScopeKids,
		" balcony ":   RoomType("balcony"),
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRoomType(in), in)
	}
}
