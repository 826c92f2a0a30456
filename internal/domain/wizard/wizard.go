// Package wizard sequences the estimate flow.
//
// Residential: ProjectTypeSelect → BhkType → RoomDesign → ProjectDetails →
// ClientInfo → Estimate. Commercial: ProjectTypeSelect → CommercialForm →
// Summary. Forward moves are gated, Back is always allowed and keeps data,
// StartOver clears everything but the session's price catalog.
package wizard

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/pricing"
)

type State string

const (
	StateProjectTypeSelect State = "project_type_select"
	StateBhkType           State = "bhk_type"
	StateRoomDesign        State = "room_design"
	StateProjectDetails    State = "project_details"
	StateClientInfo        State = "client_info"
	StateEstimate          State = "estimate"
	StateCommercialForm    State = "commercial_form"
	StateSummary           State = "summary"
)

var (
	ErrWrongStep          = errors.New("action not allowed in the current step")
	ErrStepIncomplete     = errors.New("step incomplete")
	ErrNoPreviousStep     = errors.New("no previous step")
	ErrFinalStep          = errors.New("already at the final step")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrRoomNotInLayout    = errors.New("room is not part of the selected layout")
	ErrUnknownPackage     = errors.New("unknown package")
)

var previous = map[State]State{
	StateBhkType:        StateProjectTypeSelect,
	StateRoomDesign:     StateBhkType,
	StateProjectDetails: StateRoomDesign,
	StateClientInfo:     StateProjectDetails,
	StateEstimate:       StateClientInfo,
	StateCommercialForm: StateProjectTypeSelect,
	StateSummary:        StateCommercialForm,
}

// StepError is returned when a forward transition is gated. Message is meant
// for the user.
type StepError struct {
	Step    State
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

func (e *StepError) Unwrap() error { return ErrStepIncomplete }

// Wizard is the whole in-progress flow. It is a plain value so it can be
// stored in a session and restored; the calculator is injected, not stored.
type Wizard struct {
	State       State                        `json:"state"`
	ProjectType entities.ProjectType         `json:"project_type,omitempty"`
	Bhk         entities.BhkSelection        `json:"bhk"`
	Rooms       entities.RoomConfiguration   `json:"rooms"`
	Details     entities.ProjectDetails      `json:"project_details"`
	Client      entities.ClientInfo          `json:"client_info"`
	Commercial  entities.CommercialForm      `json:"commercial"`
	Catalog     entities.PriceCatalog        `json:"catalog"`
	Estimate    *entities.EstimateResult     `json:"estimate,omitempty"`
	Commercials *entities.CommercialEstimate `json:"commercial_estimate,omitempty"`

	calc pricing.Calculator
}

// New starts a flow at the project type choice for the given catalog.
func New(catalog entities.PriceCatalog, calc pricing.Calculator) *Wizard {
	w := &Wizard{Catalog: catalog}
	w.reset()
	return w.WithCalculator(calc)
}

// WithCalculator injects the calculator after a wizard was restored.
func (w *Wizard) WithCalculator(calc pricing.Calculator) *Wizard {
	w.calc = calc
	return w
}

func (w *Wizard) calculator() pricing.Calculator {
	if w.calc == nil {
		return pricing.Calculate
	}
	return w.calc
}

func (w *Wizard) reset() {
	w.State = StateProjectTypeSelect
	w.ProjectType = ""
	w.Bhk = entities.BhkSelection{}
	w.Rooms = entities.NewRoomConfiguration()
	w.Details = entities.ProjectDetails{SelectedPackage: entities.DefaultPackage}
	w.Client = entities.ClientInfo{}
	w.Commercial = entities.CommercialForm{}
	w.Estimate = nil
	w.Commercials = nil
}

func (w *Wizard) require(states ...State) error {
	for _, s := range states {
		if w.State == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrWrongStep, w.State)
}

// ChooseProjectType picks the flow and moves into its first step.
func (w *Wizard) ChooseProjectType(pt entities.ProjectType) error {
	if err := w.require(StateProjectTypeSelect); err != nil {
		return err
	}
	switch pt {
	case entities.ProjectTypeResidential, entities.ProjectTypeCommercial:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProjectType, pt)
	}
	w.ProjectType = pt
	return w.Next()
}

// SelectBhk stores the layout choice. Rooms outside the new layout are dropped
// once the choice is a valid layout; an incomplete choice keeps every room and
// is reported when leaving the step.
func (w *Wizard) SelectBhk(sel entities.BhkSelection) error {
	if err := w.require(StateBhkType); err != nil {
		return err
	}
	w.Bhk = sel
	if sel.Validate() != nil {
		return nil
	}
	w.Rooms.Prune(entities.ResolveLayout(sel))
	w.recompute()
	return nil
}

// SetRoom merges a partial edit into one room of the layout.
func (w *Wizard) SetRoom(key string, patch entities.RoomInstancePatch) error {
	if err := w.require(StateRoomDesign); err != nil {
		return err
	}
	if err := w.inLayout(key); err != nil {
		return err
	}
	if err := w.Rooms.SetRoomInstance(key, patch); err != nil {
		return err
	}
	w.recompute()
	return nil
}

// RemoveRoom cancels a room's configuration.
func (w *Wizard) RemoveRoom(key string) error {
	if err := w.require(StateRoomDesign); err != nil {
		return err
	}
	w.Rooms.RemoveRoomInstance(key)
	w.recompute()
	return nil
}

func (w *Wizard) inLayout(key string) error {
	rt, idx, err := entities.ParseRoomKey(key)
	if err != nil {
		return err
	}
	if idx > entities.ResolveLayout(w.Bhk)[rt] {
		return fmt.Errorf("%w: %s", ErrRoomNotInLayout, key)
	}
	return nil
}

// SetProjectDetails replaces the project details. An empty package means the
// default package.
func (w *Wizard) SetProjectDetails(d entities.ProjectDetails) error {
	if err := w.require(StateProjectDetails); err != nil {
		return err
	}
	pkg, err := w.resolvePackage(d.SelectedPackage)
	if err != nil {
		return err
	}
	d.Location = strings.TrimSpace(d.Location)
	d.Timeline = strings.TrimSpace(d.Timeline)
	d.SelectedPackage = pkg
	w.Details = d
	w.recompute()
	return nil
}

// SelectPackage switches the package from the details step onwards.
func (w *Wizard) SelectPackage(name string) error {
	if err := w.require(StateProjectDetails, StateClientInfo, StateEstimate); err != nil {
		return err
	}
	pkg, err := w.resolvePackage(name)
	if err != nil {
		return err
	}
	w.Details.SelectedPackage = pkg
	w.recompute()
	return nil
}

func (w *Wizard) resolvePackage(name string) (string, error) {
	pkg := entities.NormalizePackageName(name)
	if pkg == "" {
		return entities.DefaultPackage, nil
	}
	if pkg != entities.DefaultPackage && !w.Catalog.HasPackage(pkg) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackage, name)
	}
	return pkg, nil
}

// SetClientInfo stores the contact details. Validation happens on Next.
func (w *Wizard) SetClientInfo(c entities.ClientInfo) error {
	if err := w.require(StateClientInfo); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = NormalizePhone(c.Phone)
	w.Client = c
	return nil
}

// SetCommercialForm stores the commercial flow's form. Validation happens on Next.
func (w *Wizard) SetCommercialForm(f entities.CommercialForm) error {
	if err := w.require(StateCommercialForm); err != nil {
		return err
	}
	f.SpaceType = strings.ToLower(strings.TrimSpace(f.SpaceType))
	f.AreaBucket = strings.TrimSpace(f.AreaBucket)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = NormalizePhone(f.Phone)
	w.Commercial = f
	return nil
}

// Next advances one step if the current step is complete.
func (w *Wizard) Next() error {
	switch w.State {
	case StateProjectTypeSelect:
		switch w.ProjectType {
		case entities.ProjectTypeResidential:
			w.State = StateBhkType
		case entities.ProjectTypeCommercial:
			w.State = StateCommercialForm
		default:
			return w.incomplete("choose a project type")
		}
	case StateBhkType:
		if err := w.Bhk.Validate(); err != nil {
			return w.incomplete(bhkMessage(err))
		}
		w.State = StateRoomDesign
	case StateRoomDesign:
		if !w.Rooms.IsConfigured() {
			return w.incomplete("enter the area of at least one room")
		}
		w.State = StateProjectDetails
	case StateProjectDetails:
		if err := w.checkDetails(); err != nil {
			return err
		}
		w.State = StateClientInfo
	case StateClientInfo:
		if err := validate.Struct(w.Client); err != nil {
			return w.incomplete(fieldMessages(err))
		}
		w.recompute()
		w.State = StateEstimate
	case StateCommercialForm:
		if err := w.checkCommercial(); err != nil {
			return err
		}
		est := pricing.CalculateCommercial(w.Commercial)
		w.Commercials = &est
		w.State = StateSummary
	case StateEstimate, StateSummary:
		return ErrFinalStep
	default:
		return fmt.Errorf("%w: %s", ErrWrongStep, w.State)
	}
	return nil
}

// Back returns to the preceding step without validation or data loss.
func (w *Wizard) Back() error {
	prev, ok := previous[w.State]
	if !ok {
		return ErrNoPreviousStep
	}
	w.State = prev
	return nil
}

// StartOver clears all entered data and returns to the project type choice.
func (w *Wizard) StartOver() {
	w.reset()
}

func (w *Wizard) checkDetails() error {
	d := w.Details
	switch {
	case d.Timeline == "":
		return w.incomplete("choose a timeline")
	case math.IsNaN(d.Budget) || math.IsInf(d.Budget, 0) || d.Budget <= 0:
		return w.incomplete("enter a budget greater than zero")
	}
	if _, err := w.resolvePackage(d.SelectedPackage); err != nil {
		return w.incomplete("choose one of the available packages")
	}
	return nil
}

func (w *Wizard) checkCommercial() error {
	if err := validate.Struct(w.Commercial); err != nil {
		return w.incomplete(fieldMessages(err))
	}
	if !pricing.IsCommercialSpaceType(w.Commercial.SpaceType) {
		return w.incomplete("choose one of the available space types")
	}
	if !pricing.IsCommercialAreaBucket(w.Commercial.AreaBucket) {
		return w.incomplete("choose one of the available area ranges")
	}
	return nil
}

func (w *Wizard) recompute() {
	if w.ProjectType == entities.ProjectTypeCommercial {
		return
	}
	res := w.calculator()(w.Catalog, w.Rooms, w.Details.SelectedPackage)
	w.Estimate = &res
}

func (w *Wizard) incomplete(msg string) error {
	return &StepError{Step: w.State, Message: msg}
}

func bhkMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrBhkNotSelected):
		return "choose a BHK type"
	case errors.Is(err, entities.ErrEmptyCustomLayout):
		return "add at least one room to the custom layout"
	case errors.Is(err, entities.ErrNegativeRoomCount):
		return "room counts cannot be negative"
	}
	return "choose one of the available BHK types"
}
