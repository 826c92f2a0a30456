package wizard

import (
	"encoding/json"
	"errors"
	"testing"

	"interior_estimator/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func catalog() entities.PriceCatalog {
	c := entities.NewPriceCatalog()
	c.FeaturePrice[entities.FeatureFalseCeiling] = 15
	c.PackageMultiplier["essential"] = 1
	c.PackageMultiplier["comfort"] = 1.3
	return c
}

func validClient() entities.ClientInfo {
	return entities.ClientInfo{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 98765-43210"}
}

// residentialAt walks a fresh wizard to the given residential state.
func residentialAt(t *testing.T, target State) *Wizard {
	t.Helper()
	w := New(catalog(), nil)
	require.NoError(t, w.ChooseProjectType(entities.ProjectTypeResidential))
	if target == StateBhkType {
		return w
	}
	require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.Bhk2}))
	require.NoError(t, w.Next())
	if target == StateRoomDesign {
		return w
	}
	require.NoError(t, w.SetRoom("bedroom_1", entities.RoomInstancePatch{Area: ptr(120.0), FalseCeiling: ptr(true)}))
	require.NoError(t, w.Next())
	if target == StateProjectDetails {
		return w
	}
	require.NoError(t, w.SetProjectDetails(entities.ProjectDetails{Location: "Pune", Timeline: "3 months", Budget: 500000, SelectedPackage: "comfort"}))
	require.NoError(t, w.Next())
	if target == StateClientInfo {
		return w
	}
	require.NoError(t, w.SetClientInfo(validClient()))
	require.NoError(t, w.Next())
	return w
}

func assertIncomplete(t *testing.T, err error) *StepError {
	t.Helper()
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr), "expected StepError, got %v", err)
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.NotEmpty(t, stepErr.Message)
	return stepErr
}

func TestWizard_ResidentialHappyPath(t *testing.T) {
	w := residentialAt(t, StateEstimate)

	assert.Equal(t, StateEstimate, w.State)
	require.NotNil(t, w.Estimate)
	assert.InDelta(t, 2340.0, w.Estimate.Breakdown["bedroom_1_falseCeiling"], 1e-9)
	assert.InDelta(t, 2340.0, w.Estimate.Total, 1e-9)
	assert.Equal(t, "comfort", w.Estimate.Package)
	assert.ErrorIs(t, w.Next(), ErrFinalStep)
}

func TestWizard_ProjectTypeSelect(t *testing.T) {
	w := New(catalog(), nil)
	assert.Equal(t, StateProjectTypeSelect, w.State)
	assertIncomplete(t, w.Next())
	assert.ErrorIs(t, w.ChooseProjectType("industrial"), ErrInvalidProjectType)
	assert.ErrorIs(t, w.Back(), ErrNoPreviousStep)

	require.NoError(t, w.ChooseProjectType(entities.ProjectTypeCommercial))
	assert.Equal(t, StateCommercialForm, w.State)
	assert.ErrorIs(t, w.ChooseProjectType(entities.ProjectTypeResidential), ErrWrongStep)
}

func TestWizard_BhkGate(t *testing.T) {
	t.Run("nothing chosen", func(t *testing.T) {
		w := residentialAt(t, StateBhkType)
		assertIncomplete(t, w.Next())
		assert.Equal(t, StateBhkType, w.State)
	})

	t.Run("custom with all zero counts is rejected", func(t *testing.T) {
		w := residentialAt(t, StateBhkType)
		require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.BhkCustom}))
		stepErr := assertIncomplete(t, w.Next())
		assert.Equal(t, StateBhkType, stepErr.Step)
		assert.Equal(t, StateBhkType, w.State)
	})

	t.Run("custom with one room advances", func(t *testing.T) {
		w := residentialAt(t, StateBhkType)
		require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.BhkCustom, Custom: entities.CustomRoomCounts{Kitchens: 1}}))
		require.NoError(t, w.Next())
		assert.Equal(t, StateRoomDesign, w.State)
	})
}

func TestWizard_RoomDesignGate(t *testing.T) {
	w := residentialAt(t, StateRoomDesign)

	require.NoError(t, w.SetRoom("kitchen_1", entities.RoomInstancePatch{Loft: ptr(true)}))
	assertIncomplete(t, w.Next())

	assert.ErrorIs(t, w.SetRoom("bedroom_3", entities.RoomInstancePatch{Area: ptr(10.0)}), ErrRoomNotInLayout)
	assert.ErrorIs(t, w.SetRoom("garage_1", entities.RoomInstancePatch{Area: ptr(10.0)}), ErrRoomNotInLayout)
	assert.ErrorIs(t, w.SetRoom("bedroom", entities.RoomInstancePatch{Area: ptr(10.0)}), entities.ErrInvalidRoomKey)

	require.NoError(t, w.SetRoom("kitchen_1", entities.RoomInstancePatch{Area: ptr(80.0)}))
	require.NoError(t, w.RemoveRoom("kitchen_1"))
	assertIncomplete(t, w.Next())

	require.NoError(t, w.SetRoom("bedroom_2", entities.RoomInstancePatch{Area: ptr(90.0)}))
	require.NoError(t, w.Next())
	assert.Equal(t, StateProjectDetails, w.State)
}

func TestWizard_ProjectDetailsGate(t *testing.T) {
	w := residentialAt(t, StateProjectDetails)

	assertIncomplete(t, w.Next())

	require.NoError(t, w.SetProjectDetails(entities.ProjectDetails{Timeline: "1 month", Budget: 0}))
	assertIncomplete(t, w.Next())
	assert.Equal(t, "essential", w.Details.SelectedPackage)

	assert.ErrorIs(t, w.SetProjectDetails(entities.ProjectDetails{Timeline: "1 month", Budget: 10, SelectedPackage: "platinum"}), ErrUnknownPackage)

	require.NoError(t, w.SetProjectDetails(entities.ProjectDetails{Timeline: "1 month", Budget: 10, SelectedPackage: "Comfort"}))
	require.NoError(t, w.Next())
	assert.Equal(t, StateClientInfo, w.State)
}

func TestWizard_ClientInfoGate(t *testing.T) {
	cases := []struct {
		name   string
		client entities.ClientInfo
	}{
		{"empty", entities.ClientInfo{}},
		{"bad email", entities.ClientInfo{Name: "Asha", Email: "asha@", Phone: "9876543210"}},
		{"short phone", entities.ClientInfo{Name: "Asha", Email: "asha@example.com", Phone: "98765"}},
		{"landline prefix", entities.ClientInfo{Name: "Asha", Email: "asha@example.com", Phone: "1234567890"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := residentialAt(t, StateClientInfo)
			require.NoError(t, w.SetClientInfo(tc.client))
			assertIncomplete(t, w.Next())
			assert.Equal(t, StateClientInfo, w.State)
			assert.Equal(t, 500000.0, w.Details.Budget, "other steps untouched")
		})
	}
}

func TestWizard_BackPreservesData(t *testing.T) {
	w := residentialAt(t, StateEstimate)

	for _, want := range []State{StateClientInfo, StateProjectDetails, StateRoomDesign, StateBhkType, StateProjectTypeSelect} {
		require.NoError(t, w.Back())
		assert.Equal(t, want, w.State)
	}

	assert.Equal(t, entities.Bhk2, w.Bhk.Type)
	assert.Equal(t, "comfort", w.Details.SelectedPackage)
	assert.Equal(t, "Asha Rao", w.Client.Name)
	assert.True(t, w.Rooms.IsConfigured())

	require.NoError(t, w.ChooseProjectType(entities.ProjectTypeResidential))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	assert.Equal(t, StateEstimate, w.State)
}

func TestWizard_SelectBhkPrunesRooms(t *testing.T) {
	w := residentialAt(t, StateRoomDesign)
	require.NoError(t, w.SetRoom("bedroom_2", entities.RoomInstancePatch{Area: ptr(100.0)}))
	require.NoError(t, w.Back())

	require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.Bhk1}))

	assert.NotContains(t, w.Rooms.Rooms, "bedroom_2")
}

func TestWizard_IncompleteBhkKeepsRooms(t *testing.T) {
	w := residentialAt(t, StateProjectDetails)
	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	require.Equal(t, StateBhkType, w.State)

	require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.BhkCustom}))
	assert.Contains(t, w.Rooms.Rooms, "bedroom_1")
	assertIncomplete(t, w.Next())

	require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.Bhk2}))
	require.Contains(t, w.Rooms.Rooms, "bedroom_1")
	area, ok := w.Rooms.Rooms["bedroom_1"].ValidArea()
	assert.True(t, ok)
	assert.Equal(t, 120.0, area)

	require.NoError(t, w.Next())
	assert.Equal(t, StateRoomDesign, w.State)
}

func TestWizard_SelectPackageRecomputes(t *testing.T) {
	w := residentialAt(t, StateEstimate)

	require.NoError(t, w.SelectPackage("essential"))
	assert.InDelta(t, 1800.0, w.Estimate.Total, 1e-9)

	assert.ErrorIs(t, w.SelectPackage("gold"), ErrUnknownPackage)

	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	require.NoError(t, w.Back())
	assert.ErrorIs(t, w.SelectPackage("comfort"), ErrWrongStep)
}

func TestWizard_WrongStepEdits(t *testing.T) {
	w := New(catalog(), nil)
	assert.ErrorIs(t, w.SelectBhk(entities.BhkSelection{Type: entities.Bhk1}), ErrWrongStep)
	assert.ErrorIs(t, w.SetRoom("bedroom_1", entities.RoomInstancePatch{}), ErrWrongStep)
	assert.ErrorIs(t, w.RemoveRoom("bedroom_1"), ErrWrongStep)
	assert.ErrorIs(t, w.SetProjectDetails(entities.ProjectDetails{}), ErrWrongStep)
	assert.ErrorIs(t, w.SetClientInfo(entities.ClientInfo{}), ErrWrongStep)
	assert.ErrorIs(t, w.SetCommercialForm(entities.CommercialForm{}), ErrWrongStep)
}

func TestWizard_StartOver(t *testing.T) {
	w := residentialAt(t, StateEstimate)

	w.StartOver()

	assert.Equal(t, StateProjectTypeSelect, w.State)
	assert.Empty(t, w.ProjectType)
	assert.Empty(t, w.Bhk.Type)
	assert.Empty(t, w.Rooms.Rooms)
	assert.Equal(t, "essential", w.Details.SelectedPackage)
	assert.Empty(t, w.Client.Name)
	assert.Nil(t, w.Estimate)
	assert.True(t, w.Catalog.HasPackage("comfort"), "catalog survives")
}

func TestWizard_CommercialFlow(t *testing.T) {
	w := New(catalog(), nil)
	require.NoError(t, w.ChooseProjectType(entities.ProjectTypeCommercial))

	assertIncomplete(t, w.Next())

	require.NoError(t, w.SetCommercialForm(entities.CommercialForm{SpaceType: "warehouse", AreaBucket: "0-500", Name: "Ravi", Phone: "9876543210"}))
	assertIncomplete(t, w.Next())

	require.NoError(t, w.SetCommercialForm(entities.CommercialForm{SpaceType: "Office", AreaBucket: "0-500", Name: "Ravi", Phone: "9876543210"}))
	require.NoError(t, w.Next())
	assert.Equal(t, StateSummary, w.State)
	require.NotNil(t, w.Commercials)
	assert.Equal(t, 300000.0, w.Commercials.Total)
	assert.Nil(t, w.Estimate)

	require.NoError(t, w.Back())
	assert.Equal(t, StateCommercialForm, w.State)
	require.NoError(t, w.Back())
	assert.Equal(t, StateProjectTypeSelect, w.State)
}

func TestWizard_InjectedCalculator(t *testing.T) {
	calls := 0
	calc := func(_ entities.PriceCatalog, _ entities.RoomConfiguration, pkg string) entities.EstimateResult {
		calls++
		return entities.EstimateResult{Total: 42, Breakdown: map[string]float64{}, Package: pkg}
	}
	w := New(catalog(), calc)
	require.NoError(t, w.ChooseProjectType(entities.ProjectTypeResidential))
	require.NoError(t, w.SelectBhk(entities.BhkSelection{Type: entities.Bhk1}))
	require.NoError(t, w.Next())
	require.NoError(t, w.SetRoom("bedroom_1", entities.RoomInstancePatch{Area: ptr(10.0)}))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 42.0, w.Estimate.Total)
}

func TestWizard_SurvivesJSONRoundTrip(t *testing.T) {
	w := residentialAt(t, StateProjectDetails)

	raw, err := json.Marshal(w)
	require.NoError(t, err)

	var restored Wizard
	require.NoError(t, json.Unmarshal(raw, &restored))
	restored.WithCalculator(nil)

	assert.Equal(t, StateProjectDetails, restored.State)
	require.NoError(t, restored.Back())
	require.NoError(t, restored.SetRoom("bedroom_2", entities.RoomInstancePatch{Area: ptr(100.0), FalseCeiling: ptr(true)}))
	assert.InDelta(t, 3300.0, restored.Estimate.Total, 1e-9)
}

func TestIsValidPhone(t *testing.T) {
	for _, ok := range []string{"9876543210", "+91 98765 43210", "09876543210", "(987) 654-3210"} {
		assert.True(t, IsValidPhone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "5876543210", "98765432101", "phone"} {
		assert.False(t, IsValidPhone(bad), bad)
	}
}

func TestNewValidator_PhoneTag(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })
	assert.NoError(t, v.Var("+91 98765-43210", "phone"))
	assert.Error(t, v.Var("12345", "phone"))
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	assert.Panics(t, func() {
		mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
	})
}
