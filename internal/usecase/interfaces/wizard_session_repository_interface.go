package interfaces

import (
	"context"

	"interior_estimator/internal/domain/wizard"
)

// IWizardSessionRepository stores wizard snapshots between requests.
//
// GetByID and Save return a zero Session (empty ID) when the session does not
// exist or has expired.
type IWizardSessionRepository interface {
	Create(ctx context.Context, s wizard.Session) (wizard.Session, error)
	GetByID(ctx context.Context, id string) (wizard.Session, error)
	Save(ctx context.Context, s wizard.Session) (wizard.Session, error)
	Delete(ctx context.Context, id string) error
}
