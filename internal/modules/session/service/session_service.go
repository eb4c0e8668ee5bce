package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sukhan/internal/modules/session/domain"
	sessionout "sukhan/internal/modules/session/port/out"
	"sukhan/internal/platform/clock"
	apperrors "sukhan/internal/platform/errors"
	"sukhan/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
	store sessionout.SessionStore
	log   logrus.FieldLogger
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore, log logrus.FieldLogger) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store, log: log}
}

// Start stamps a new active session; active carries the checkpoint and cards.
func (s *SessionService) Start(_ context.Context, active domain.ActiveSession) (domain.ActiveSession, error) {
	if active.UnitID == "" || active.CheckpointID == "" {
		return domain.ActiveSession{}, fmt.Errorf("%w: unit and checkpoint are required", apperrors.ErrInvalidInput)
	}
	active.SessionID = s.idGen.New()
	active.StartedAt = s.clock.Now()
	s.log.WithFields(logrus.Fields{
		"session_id": active.SessionID,
		"checkpoint": active.CheckpointID,
		"cards":      len(active.Words),
	}).Info("session started")
	return active, nil
}

// End closes the session and writes its journal note.
func (s *SessionService) End(ctx context.Context, active domain.ActiveSession, completed bool, quiz *domain.QuizScore) (domain.Session, string, error) {
	endedAt := s.clock.Now()
	duration := max(0, int(endedAt.Sub(active.StartedAt).Minutes()))
	session := domain.Session{
		ID:              active.SessionID,
		UnitID:          active.UnitID,
		UnitTitle:       active.UnitTitle,
		CheckpointID:    active.CheckpointID,
		CheckpointKind:  active.CheckpointKind,
		CheckpointTitle: active.CheckpointTitle,
		StartedAt:       active.StartedAt,
		EndedAt:         endedAt,
		DurationMin:     duration,
		Words:           active.Words,
		Ratings:         active.Ratings,
		Completed:       completed,
		Quiz:            quiz,
	}
	path, err := s.store.Save(ctx, session)
	if err != nil {
		return domain.Session{}, "", err
	}
	s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"completed":  completed,
		"path":       path,
	}).Info("session ended")
	return session, path, nil
}
