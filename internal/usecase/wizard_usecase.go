package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/pricing"
	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrEstimateNotReady = errors.New("estimate not ready")
)

// IWizardUseCase drives stored wizard sessions. Every mutating call loads
// the snapshot, applies one wizard operation and saves it back.
type IWizardUseCase interface {
	Start(ctx context.Context) (wizard.Session, error)
	Get(ctx context.Context, id string) (wizard.Session, error)
	Delete(ctx context.Context, id string) error

	ChooseProjectType(ctx context.Context, id string, pt entities.ProjectType) (wizard.Session, error)
	SelectBhk(ctx context.Context, id string, sel entities.BhkSelection) (wizard.Session, error)
	SetRoom(ctx context.Context, id, roomKey string, patch entities.RoomInstancePatch) (wizard.Session, error)
	RemoveRoom(ctx context.Context, id, roomKey string) (wizard.Session, error)
	SetProjectDetails(ctx context.Context, id string, d entities.ProjectDetails) (wizard.Session, error)
	SelectPackage(ctx context.Context, id, pkg string) (wizard.Session, error)
	SetClientInfo(ctx context.Context, id string, c entities.ClientInfo) (wizard.Session, error)
	SetCommercialForm(ctx context.Context, id string, f entities.CommercialForm) (wizard.Session, error)

	Next(ctx context.Context, id string) (wizard.Session, error)
	Back(ctx context.Context, id string) (wizard.Session, error)
	StartOver(ctx context.Context, id string) (wizard.Session, error)

	// Result returns a session that has reached its final step.
	Result(ctx context.Context, id string) (wizard.Session, error)
}

type WizardUseCase struct {
	repo    interfaces.IWizardSessionRepository
	catalog ICatalogUseCase
	calc    pricing.Calculator
	log     *zap.Logger
	now     func() time.Time
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(repo interfaces.IWizardSessionRepository, catalog ICatalogUseCase, calc pricing.Calculator, log *zap.Logger) *WizardUseCase {
	if calc == nil {
		calc = pricing.Calculate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WizardUseCase{
		repo:    repo,
		catalog: catalog,
		calc:    calc,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Start loads the catalog and opens a new session at the project type step.
func (u *WizardUseCase) Start(ctx context.Context) (wizard.Session, error) {
	catalog, err := u.catalog.Load(ctx)
	if err != nil {
		return wizard.Session{}, err
	}

	now := u.now()
	s := wizard.Session{
		ID:        uuid.NewString(),
		Wizard:    wizard.New(catalog, u.calc),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return wizard.Session{}, err
	}
	u.log.Info("wizard session started", zap.String("session_id", created.ID))
	return created, nil
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (wizard.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.Session{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.ID == "" || s.Wizard == nil {
		return wizard.Session{}, ErrSessionNotFound
	}
	s.Wizard.WithCalculator(u.calc)
	return s, nil
}

func (u *WizardUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *WizardUseCase) ChooseProjectType(ctx context.Context, id string, pt entities.ProjectType) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.ChooseProjectType(pt) })
}

func (u *WizardUseCase) SelectBhk(ctx context.Context, id string, sel entities.BhkSelection) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SelectBhk(sel) })
}

func (u *WizardUseCase) SetRoom(ctx context.Context, id, roomKey string, patch entities.RoomInstancePatch) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SetRoom(roomKey, patch) })
}

func (u *WizardUseCase) RemoveRoom(ctx context.Context, id, roomKey string) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.RemoveRoom(roomKey) })
}

func (u *WizardUseCase) SetProjectDetails(ctx context.Context, id string, d entities.ProjectDetails) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SetProjectDetails(d) })
}

func (u *WizardUseCase) SelectPackage(ctx context.Context, id, pkg string) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SelectPackage(pkg) })
}

func (u *WizardUseCase) SetClientInfo(ctx context.Context, id string, c entities.ClientInfo) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SetClientInfo(c) })
}

func (u *WizardUseCase) SetCommercialForm(ctx context.Context, id string, f entities.CommercialForm) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error { return w.SetCommercialForm(f) })
}

func (u *WizardUseCase) Next(ctx context.Context, id string) (wizard.Session, error) {
	return u.apply(ctx, id, (*wizard.Wizard).Next)
}

func (u *WizardUseCase) Back(ctx context.Context, id string) (wizard.Session, error) {
	return u.apply(ctx, id, (*wizard.Wizard).Back)
}

func (u *WizardUseCase) StartOver(ctx context.Context, id string) (wizard.Session, error) {
	return u.apply(ctx, id, func(w *wizard.Wizard) error {
		w.StartOver()
		return nil
	})
}

func (u *WizardUseCase) Result(ctx context.Context, id string) (wizard.Session, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	switch {
	case s.Wizard.State == wizard.StateEstimate && s.Wizard.Estimate != nil:
	case s.Wizard.State == wizard.StateSummary && s.Wizard.Commercials != nil:
	default:
		return wizard.Session{}, ErrEstimateNotReady
	}
	return s, nil
}

func (u *WizardUseCase) apply(ctx context.Context, id string, action func(w *wizard.Wizard) error) (wizard.Session, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}

	from := s.Wizard.State
	if err := action(s.Wizard); err != nil {
		u.log.Debug("wizard action rejected",
			zap.String("session_id", s.ID),
			zap.String("state", string(from)),
			zap.Error(err),
		)
		return wizard.Session{}, err
	}
	if s.Wizard.State != from {
		u.log.Info("wizard step changed",
			zap.String("session_id", s.ID),
			zap.String("from", string(from)),
			zap.String("to", string(s.Wizard.State)),
		)
	}

	s.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, s)
	if errors.Is(err, wizard.ErrStaleSession) {
		u.log.Info("wizard session edit conflicted",
			zap.String("session_id", s.ID),
			zap.Int64("version", s.Version),
		)
		return wizard.Session{}, err
	}
	if err != nil {
		return wizard.Session{}, err
	}
	if saved.ID == "" {
		return wizard.Session{}, ErrSessionNotFound
	}
	if saved.Wizard != nil {
		saved.Wizard.WithCalculator(u.calc)
	}
	return saved, nil
}
