package entities

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrBhkNotSelected    = errors.New("bhk type not selected")
	ErrUnknownBhkType    = errors.New("unknown bhk type")
	ErrEmptyCustomLayout = errors.New("custom layout needs at least one room")
	ErrNegativeRoomCount = errors.New("room counts cannot be negative")
	ErrInvalidRoomKey    = errors.New("invalid room key")
)

// BhkType is a coarse residential layout size ("2BHK") or "custom".
type BhkType string

const (
	Bhk1      BhkType = "1BHK"
	Bhk2      BhkType = "2BHK"
	Bhk3      BhkType = "3BHK"
	Bhk4      BhkType = "4BHK"
	Bhk5      BhkType = "5BHK"
	BhkCustom BhkType = "custom"
)

var fixedLayouts = map[BhkType]map[RoomType]int{
	Bhk1: {RoomTypeLivingRoom: 1, RoomTypeBedroom: 1, RoomTypeKitchen: 1, RoomTypeBathroom: 1, RoomTypeDining: 0},
	Bhk2: {RoomTypeLivingRoom: 1, RoomTypeBedroom: 2, RoomTypeKitchen: 1, RoomTypeBathroom: 2, RoomTypeDining: 1},
	Bhk3: {RoomTypeLivingRoom: 1, RoomTypeBedroom: 3, RoomTypeKitchen: 1, RoomTypeBathroom: 3, RoomTypeDining: 1},
	Bhk4: {RoomTypeLivingRoom: 1, RoomTypeBedroom: 4, RoomTypeKitchen: 1, RoomTypeBathroom: 4, RoomTypeDining: 1},
	Bhk5: {RoomTypeLivingRoom: 2, RoomTypeBedroom: 5, RoomTypeKitchen: 1, RoomTypeBathroom: 5, RoomTypeDining: 1},
}

// CustomRoomCounts are the user-supplied counts of a custom layout.
type CustomRoomCounts struct {
	LivingRooms int `json:"living_rooms"`
	Bedrooms    int `json:"bedrooms"`
	Kitchens    int `json:"kitchens"`
	Bathrooms   int `json:"bathrooms"`
	Dinings     int `json:"dinings"`
}

func (c CustomRoomCounts) total() int {
	return c.LivingRooms + c.Bedrooms + c.Kitchens + c.Bathrooms + c.Dinings
}

func (c CustomRoomCounts) hasNegative() bool {
	return c.LivingRooms < 0 || c.Bedrooms < 0 || c.Kitchens < 0 || c.Bathrooms < 0 || c.Dinings < 0
}

// BhkSelection is the chosen layout. Custom is only read when Type is BhkCustom.
type BhkSelection struct {
	Type   BhkType          `json:"type"`
	Custom CustomRoomCounts `json:"custom"`
}

// Validate reports whether the selection allows moving on to room design.
func (s BhkSelection) Validate() error {
	switch {
	case s.Type == "":
		return ErrBhkNotSelected
	case s.Type == BhkCustom:
		if s.Custom.hasNegative() {
			return ErrNegativeRoomCount
		}
		if s.Custom.total() == 0 {
			return ErrEmptyCustomLayout
		}
		return nil
	}
	if _, ok := fixedLayouts[s.Type]; !ok {
		return ErrUnknownBhkType
	}
	return nil
}

// ResolveLayout returns the room counts for a selection. Unknown or empty
// selections resolve to an empty map.
func ResolveLayout(s BhkSelection) map[RoomType]int {
	if s.Type == BhkCustom {
		return map[RoomType]int{
			RoomTypeLivingRoom: s.Custom.LivingRooms,
			RoomTypeBedroom:    s.Custom.Bedrooms,
			RoomTypeKitchen:    s.Custom.Kitchens,
			RoomTypeBathroom:   s.Custom.Bathrooms,
			RoomTypeDining:     s.Custom.Dinings,
		}
	}
	fixed, ok := fixedLayouts[s.Type]
	if !ok {
		return map[RoomType]int{}
	}
	out := make(map[RoomType]int, len(fixed))
	for k, v := range fixed {
		out[k] = v
	}
	return out
}

// LayoutRoomKeys expands a layout into its room instance keys in layout order.
func LayoutRoomKeys(layout map[RoomType]int) []string {
	var keys []string
	for _, rt := range RoomTypes {
		for i := 1; i <= layout[rt]; i++ {
			keys = append(keys, RoomKey(rt, i))
		}
	}
	return keys
}

// RoomKey builds the "<roomType>_<index>" key, index starting at 1.
func RoomKey(rt RoomType, index int) string {
	return fmt.Sprintf("%s_%d", rt, index)
}

// ParseRoomKey splits a room key into its room type and index.
func ParseRoomKey(key string) (RoomType, int, error) {
	i := strings.LastIndex(key, "_")
	if i <= 0 || i == len(key)-1 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRoomKey, key)
	}
	idx, err := strconv.Atoi(key[i+1:])
	if err != nil || idx < 1 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRoomKey, key)
	}
	return RoomType(key[:i]), idx, nil
}

// RoomInstance is the configuration of a single room unit.
type RoomInstance struct {
	RoomType     RoomType       `json:"room_type"`
	Area         *float64       `json:"area,omitempty"`
	FalseCeiling bool           `json:"false_ceiling"`
	Loft         bool           `json:"loft"`
	KidsRoom     bool           `json:"kids_room"`
	Shape        string         `json:"shape,omitempty"`
	Accessories  map[string]int `json:"accessories,omitempty"`
}

// ValidArea returns the area when it is a finite positive number.
func (r RoomInstance) ValidArea() (float64, bool) {
	if r.Area == nil {
		return 0, false
	}
	a := *r.Area
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return 0, false
	}
	return a, true
}

// RoomInstancePatch is a partial edit. Nil fields leave the previous value
// untouched. ClearArea drops the area (non-numeric input).
type RoomInstancePatch struct {
	Area         *float64
	ClearArea    bool
	FalseCeiling *bool
	Loft         *bool
	KidsRoom     *bool
	Shape        *string
	Accessories  map[string]int
}

// RoomConfiguration holds every configured room instance keyed by room key.
type RoomConfiguration struct {
	Rooms map[string]RoomInstance `json:"rooms"`
}

func NewRoomConfiguration() RoomConfiguration {
	return RoomConfiguration{Rooms: map[string]RoomInstance{}}
}

// SetRoomInstance merges a patch into the instance stored under key, creating
// it when absent.
func (c *RoomConfiguration) SetRoomInstance(key string, patch RoomInstancePatch) error {
	rt, _, err := ParseRoomKey(key)
	if err != nil {
		return err
	}
	if c.Rooms == nil {
		c.Rooms = map[string]RoomInstance{}
	}

	inst, ok := c.Rooms[key]
	if !ok {
		inst = RoomInstance{RoomType: rt}
	}

	switch {
	case patch.ClearArea:
		inst.Area = nil
	case patch.Area != nil:
		a := *patch.Area
		if math.IsNaN(a) || math.IsInf(a, 0) {
			inst.Area = nil
		} else {
			inst.Area = &a
		}
	}
	if patch.FalseCeiling != nil {
		inst.FalseCeiling = *patch.FalseCeiling
	}
	if patch.Loft != nil {
		inst.Loft = *patch.Loft && rt == RoomTypeKitchen
	}
	if patch.KidsRoom != nil {
		inst.KidsRoom = *patch.KidsRoom && rt == RoomTypeBedroom
	}
	if patch.Shape != nil {
		inst.Shape = strings.TrimSpace(*patch.Shape)
	}
	if len(patch.Accessories) > 0 {
		merged := make(map[string]int, len(inst.Accessories)+len(patch.Accessories))
		for name, qty := range inst.Accessories {
			merged[name] = qty
		}
		for name, qty := range patch.Accessories {
			if qty <= 0 {
				delete(merged, name)
				continue
			}
			merged[name] = qty
		}
		inst.Accessories = merged
	}

	c.Rooms[key] = inst
	return nil
}

// RemoveRoomInstance drops an instance. Removing an absent key is a no-op.
func (c *RoomConfiguration) RemoveRoomInstance(key string) {
	delete(c.Rooms, key)
}

// IsConfigured reports whether at least one room has a positive area.
func (c RoomConfiguration) IsConfigured() bool {
	for _, inst := range c.Rooms {
		if _, ok := inst.ValidArea(); ok {
			return true
		}
	}
	return false
}

// Keys returns the room keys sorted, for deterministic iteration.
func (c RoomConfiguration) Keys() []string {
	keys := make([]string, 0, len(c.Rooms))
	for k := range c.Rooms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Prune drops instances whose key is not part of the layout.
func (c *RoomConfiguration) Prune(layout map[RoomType]int) {
	for key := range c.Rooms {
		rt, idx, err := ParseRoomKey(key)
		if err != nil || idx > layout[rt] {
			delete(c.Rooms, key)
		}
	}
}
