package jsonfile

import (
	"context"
	"slices"
	"time"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	sessions *collection[model.Session]
}

func NewSessionRepository(storage model.Storage) *SessionRepository {
	return &SessionRepository{
		sessions: newCollection[model.Session](storage, SessionsObject),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	return r.sessions.update(ctx, func(sessions []model.Session, _ bool) ([]model.Session, error) {
		if slices.ContainsFunc(sessions, func(s model.Session) bool { return s.Token == session.Token }) {
			return nil, model.ErrConflict
		}
		return append(sessions, session), nil
	})
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (model.Session, error) {
	sessions, _, err := r.sessions.read(ctx)
	if err != nil {
		return model.Session{}, err
	}

	i := slices.IndexFunc(sessions, func(s model.Session) bool { return s.Token == token })
	if i < 0 {
		return model.Session{}, model.ErrNotFound
	}

	return sessions[i], nil
}

func (r *SessionRepository) Deactivate(ctx context.Context, token string) error {
	return r.sessions.update(ctx, func(sessions []model.Session, _ bool) ([]model.Session, error) {
		i := slices.IndexFunc(sessions, func(s model.Session) bool { return s.Token == token })
		if i < 0 {
			return nil, model.ErrNotFound
		}
		sessions[i].IsActive = false
		return sessions, nil
	})
}

func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	var removed int
	err := r.sessions.update(ctx, func(sessions []model.Session, _ bool) ([]model.Session, error) {
		before := len(sessions)
		sessions = slices.DeleteFunc(sessions, func(s model.Session) bool { return s.Expired(now) })
		removed = before - len(sessions)
		return sessions, nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
