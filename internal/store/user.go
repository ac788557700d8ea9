package store

import (
	"context"
	"log/slog"
	"sync"

	"readnest/internal/models"
	"readnest/internal/snapshot"
)

// UserStore holds the single active reader profile and its settings. It is
// independent of the reading store; views consume both side by side.
type UserStore struct {
	mu   sync.RWMutex
	user *models.Profile

	snapshots snapshot.Store
	logger    *slog.Logger
}

func NewUserStore(snapshots snapshot.Store, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{snapshots: snapshots, logger: logger}
}

// Load restores the saved settings onto the active profile, if any exist.
func (s *UserStore) Load(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	var settings models.UserSettings
	if err := s.snapshots.Load(ctx, snapshot.KeySettings, &settings); err != nil {
		if err == snapshot.ErrNotFound {
			return nil
		}
		return err
	}
	s.user.Settings = settings
	return nil
}

// User returns a copy of the active profile, or nil when nobody is signed in.
func (s *UserStore) User() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the active profile wholesale. Passing nil clears it.
func (s *UserStore) SetUser(user *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// UpdateSettings shallow-merges the patch into the active profile's settings.
// ParentalControls replaces the whole sub-object when present. Returns false
// without touching anything when no profile is active.
func (s *UserStore) UpdateSettings(patch models.SettingsPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false
	}
	if patch.Theme != nil {
		s.user.Settings.Theme = *patch.Theme
	}
	if patch.ReadingGoal != nil {
		s.user.Settings.ReadingGoal = *patch.ReadingGoal
	}
	if patch.Notifications != nil {
		s.user.Settings.Notifications = *patch.Notifications
	}
	if patch.ParentalControls != nil {
		s.user.Settings.ParentalControls = *patch.ParentalControls
	}
	s.persistSettings()
	return true
}

// UpdateParentalControls replaces the parental-control block. Parent-gated at
// the HTTP boundary.
func (s *UserStore) UpdateParentalControls(pc models.ParentalControls) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false
	}
	s.user.Settings.ParentalControls = pc
	s.persistSettings()
	return true
}

// persistSettings mirrors the settings blob. Called with the lock held.
func (s *UserStore) persistSettings() {
	if s.snapshots == nil || s.user == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.snapshots.Save(ctx, snapshot.KeySettings, s.user.Settings); err != nil {
		s.logger.Warn("failed to persist settings", "error", err)
	}
}
