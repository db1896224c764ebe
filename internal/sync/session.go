package sync

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-timetable/dashboard-api/internal/localstore"
	"github.com/smart-timetable/dashboard-api/internal/models"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// Login authenticates against the scheduling service or, in local mode,
// against the seeded accounts. The session survives restarts: it is written
// to the local store in both modes.
func (s *Syncer) Login(ctx context.Context, creds models.Credentials) (*models.User, Source, error) {
	if err := s.validateInput(creds); err != nil {
		return nil, s.origin(), err
	}

	if s.mode == models.ModeRemote {
		start := time.Now()
		user, err := s.gateway.Login(ctx, creds)
		s.metrics.ObserveRemote("auth", "login", time.Since(start), err == nil)
		if err != nil {
			return nil, SourceRemote, err
		}
		s.rememberUser(ctx, user)
		return user, SourceRemote, nil
	}

	user, err := s.localLogin(ctx, creds)
	if err != nil {
		return nil, SourceLocal, err
	}
	s.rememberUser(ctx, user)
	return user, SourceLocal, nil
}

func (s *Syncer) localLogin(ctx context.Context, creds models.Credentials) (*models.User, error) {
	raw, ok, err := s.kv.Get(ctx, localstore.KeyUsers)
	if err != nil {
		s.logger.Warn("local accounts read failed", zap.Error(err))
		return nil, appErrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, appErrors.ErrInvalidCredentials
	}
	var accounts []models.LocalAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.logger.Warn("local accounts document is corrupt", zap.Error(err))
		return nil, appErrors.ErrInvalidCredentials
	}

	for _, account := range accounts {
		if account.Username != creds.Username || account.Role != creds.Role {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)) != nil {
			break
		}
		user := account.User
		return &user, nil
	}
	return nil, appErrors.ErrInvalidCredentials
}

// CurrentUser returns the signed-in user, or nil when nobody is. Failures
// reading the persisted session degrade to "not signed in".
func (s *Syncer) CurrentUser(ctx context.Context) (*models.User, error) {
	s.sessionMu.RLock()
	if s.currentUser != nil {
		user := *s.currentUser
		s.sessionMu.RUnlock()
		return &user, nil
	}
	s.sessionMu.RUnlock()

	raw, ok, err := s.kv.Get(ctx, localstore.KeyCurrentUser)
	if err != nil {
		s.logger.Warn("session read failed", zap.Error(err))
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("session document is corrupt", zap.Error(err))
		return nil, nil
	}

	s.sessionMu.Lock()
	s.currentUser = &user
	s.sessionMu.Unlock()

	out := user
	return &out, nil
}

// Logout clears the session in memory and in the local store.
func (s *Syncer) Logout(ctx context.Context) error {
	s.sessionMu.Lock()
	s.currentUser = nil
	s.sessionMu.Unlock()
	return s.kv.Delete(ctx, localstore.KeyCurrentUser)
}

func (s *Syncer) rememberUser(ctx context.Context, user *models.User) {
	s.sessionMu.Lock()
	remembered := *user
	s.currentUser = &remembered
	s.sessionMu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.kv.Put(ctx, localstore.KeyCurrentUser, raw); err != nil {
		s.logger.Warn("persisting session failed", zap.Error(err))
	}
}
