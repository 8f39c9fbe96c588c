package shell

import (
	"context"
	"sync"
	"time"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/logging"
)

const defaultSnapshotInterval = 5 * time.Second

// sessionSaver persists a session snapshot after registry mutations and
// writes the tab-count bookkeeping back to the config store. Saves are
// debounced onto a timer goroutine: registry pushes arrive on the UI thread
// and only stage the snapshot, the SQLite and config writes happen off it.
// It observes the controller through the Notifier interface so snapshots are
// built from the pushed state, never by calling back into the controller.
type sessionSaver struct {
	ctx       context.Context
	repo      repository.SessionStateRepository
	cfgMgr    *config.Manager
	sessionID entity.SessionID
	enabled   bool
	interval  time.Duration

	mu           sync.Mutex
	timer        *time.Timer
	pending      *entity.SessionState
	pendingCount int // -1 when the tab count is unchanged
	activeID     entity.TabID
	lastCount    int
}

func newSessionSaver(ctx context.Context, repo repository.SessionStateRepository, cfgMgr *config.Manager, sessionID entity.SessionID, cfg config.SessionConfig) *sessionSaver {
	interval := time.Duration(cfg.SnapshotIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultSnapshotInterval
	}
	return &sessionSaver{
		ctx:          logging.WithComponent(ctx, "session"),
		repo:         repo,
		cfgMgr:       cfgMgr,
		sessionID:    sessionID,
		enabled:      cfg.SnapshotTabs && repo != nil,
		interval:     interval,
		pendingCount: -1,
		lastCount:    -1,
	}
}

func (s *sessionSaver) TabOpened(entity.Tab, *entity.Tab) {}

func (s *sessionSaver) TabClosed(entity.TabID) {}

func (s *sessionSaver) ActiveTabChanged(id entity.TabID) {
	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
}

// RegistryChanged stages a snapshot of the pushed state and (re)arms the
// debounce timer. The write itself runs from the timer goroutine.
func (s *sessionSaver) RegistryChanged(snap entity.RegistrySnapshot) {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	s.pending = stateFromSnapshot(s.sessionID, snap, s.activeID)
	if len(snap.Order) != s.lastCount {
		s.lastCount = len(snap.Order)
		s.pendingCount = len(snap.Order)
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.flush)
	s.mu.Unlock()
}

// flush writes the staged snapshot and tab-count bookkeeping.
func (s *sessionSaver) flush() {
	s.mu.Lock()
	state := s.pending
	count := s.pendingCount
	s.pending = nil
	s.pendingCount = -1
	s.timer = nil
	s.mu.Unlock()

	if state == nil {
		return
	}

	log := logging.FromContext(s.ctx)

	if err := s.repo.SaveSnapshot(s.ctx, state); err != nil {
		log.Warn().Err(err).Msg("session snapshot save failed")
	}

	if count >= 0 && s.cfgMgr != nil {
		if err := s.cfgMgr.PersistTabCount(count); err != nil {
			log.Debug().Err(err).Msg("tab count bookkeeping failed")
		}
	}
}

// saveFinal cancels the debounce and writes one last snapshot during
// shutdown. Without a live controller it falls back to the staged state.
func (s *sessionSaver) saveFinal(tw *browser.TabbedWindow) {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	state := s.pending
	s.pending = nil
	s.mu.Unlock()

	if tw != nil {
		state = tw.SessionState(s.sessionID)
	}
	if state == nil {
		return
	}
	if err := s.repo.SaveSnapshot(s.ctx, state); err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("final snapshot save failed")
	}
}

// stateFromSnapshot builds a persistable session state from a pushed
// registry snapshot.
func stateFromSnapshot(sessionID entity.SessionID, snap entity.RegistrySnapshot, activeID entity.TabID) *entity.SessionState {
	state := &entity.SessionState{
		Version:     entity.SessionStateVersion,
		SessionID:   sessionID,
		Tabs:        make([]entity.TabSnapshot, 0, len(snap.Order)),
		ActiveTabID: activeID,
		SavedAt:     time.Now(),
	}
	for i, id := range snap.Order {
		tab, ok := snap.TabsByID[id]
		if !ok {
			continue
		}
		state.Tabs = append(state.Tabs, entity.TabSnapshot{
			ID:       tab.ID,
			URL:      tab.URL,
			Title:    tab.Title,
			Position: i,
		})
	}
	return state
}
