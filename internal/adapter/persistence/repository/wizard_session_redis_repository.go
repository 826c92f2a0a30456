package repository

import (
	"context"
	"errors"
	"time"

	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "wizard:session:"

// WizardSessionRedisRepository keeps each snapshot as a JSON string with a
// sliding TTL. Every Save pushes the expiry forward.
type WizardSessionRedisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionRedisRepository)(nil)

func NewWizardSessionRedisRepository(rdb *redis.Client, ttl time.Duration) *WizardSessionRedisRepository {
	return &WizardSessionRedisRepository{rdb: rdb, ttl: ttl}
}

func (r *WizardSessionRedisRepository) Create(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	b, err := encodeSession(s)
	if err != nil {
		return wizard.Session{}, err
	}
	ok, err := r.rdb.SetNX(ctx, sessionKeyPrefix+s.ID, b, r.ttl).Result()
	if err != nil {
		return wizard.Session{}, err
	}
	if !ok {
		return wizard.Session{}, ErrSessionAlreadyExists
	}
	return s, nil
}

func (r *WizardSessionRedisRepository) GetByID(ctx context.Context, id string) (wizard.Session, error) {
	b, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return wizard.Session{}, nil
	}
	if err != nil {
		return wizard.Session{}, err
	}
	return decodeSession(b)
}

// Save replaces the snapshot under WATCH so a concurrent writer either loses
// the version check or aborts the transaction.
func (r *WizardSessionRedisRepository) Save(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	key := sessionKeyPrefix + s.ID
	expected := s.Version
	s.Version++
	b, err := encodeSession(s)
	if err != nil {
		return wizard.Session{}, err
	}

	saved := false
	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		stored, err := decodeSession(current)
		if err != nil {
			return err
		}
		if stored.Version != expected {
			return wizard.ErrStaleSession
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = true
		return nil
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return wizard.Session{}, wizard.ErrStaleSession
	}
	if err != nil {
		return wizard.Session{}, err
	}
	if !saved {
		return wizard.Session{}, nil
	}
	return s, nil
}

func (r *WizardSessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
