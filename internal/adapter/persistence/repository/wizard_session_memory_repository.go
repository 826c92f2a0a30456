package repository

import (
	"context"
	"sync"
	"time"

	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase/interfaces"
)

type memorySession struct {
	snapshot  []byte
	version   int64
	expiresAt time.Time
}

// WizardSessionMemoryRepository is a single-process store for local runs and
// tests. Snapshots are stored encoded so callers never share a Wizard.
type WizardSessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionMemoryRepository)(nil)

func NewWizardSessionMemoryRepository(ttl time.Duration) *WizardSessionMemoryRepository {
	return &WizardSessionMemoryRepository{
		sessions: map[string]memorySession{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *WizardSessionMemoryRepository) Create(_ context.Context, s wizard.Session) (wizard.Session, error) {
	b, err := encodeSession(s)
	if err != nil {
		return wizard.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live(s.ID); ok {
		return wizard.Session{}, ErrSessionAlreadyExists
	}
	r.sessions[s.ID] = r.entry(b, s.Version)
	return s, nil
}

func (r *WizardSessionMemoryRepository) GetByID(_ context.Context, id string) (wizard.Session, error) {
	r.mu.Lock()
	entry, ok := r.live(id)
	r.mu.Unlock()
	if !ok {
		return wizard.Session{}, nil
	}
	return decodeSession(entry.snapshot)
}

// Save replaces the snapshot when the stored version still matches s.Version.
func (r *WizardSessionMemoryRepository) Save(_ context.Context, s wizard.Session) (wizard.Session, error) {
	expected := s.Version
	s.Version++
	b, err := encodeSession(s)
	if err != nil {
		return wizard.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.live(s.ID)
	if !ok {
		return wizard.Session{}, nil
	}
	if current.version != expected {
		return wizard.Session{}, wizard.ErrStaleSession
	}
	r.sessions[s.ID] = r.entry(b, s.Version)
	return s, nil
}

func (r *WizardSessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// live returns an unexpired entry, evicting it if it has expired. Callers hold mu.
func (r *WizardSessionMemoryRepository) live(id string) (memorySession, bool) {
	entry, ok := r.sessions[id]
	if !ok {
		return memorySession{}, false
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.sessions, id)
		return memorySession{}, false
	}
	return entry, true
}

func (r *WizardSessionMemoryRepository) entry(b []byte, version int64) memorySession {
	e := memorySession{snapshot: b, version: version}
	if r.ttl > 0 {
		e.expiresAt = r.now().Add(r.ttl)
	}
	return e
}
