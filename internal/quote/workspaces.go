package quote

import (
	"context"
	"sync"
	"time"

	"travelquote/internal/bundling"
	"travelquote/pkg/clock"
	"travelquote/pkg/logger"
)

type workspace struct {
	id      string
	session *bundling.Session
	cancel  context.CancelFunc

	mu     sync.Mutex
	idle   *idleTimer
	closed bool
}

type idleTimer struct {
	timer clock.Timer
}

type registry struct {
	mu    sync.RWMutex
	items map[string]*workspace
}

func newRegistry() *registry {
	return &registry{items: make(map[string]*workspace)}
}

func (r *registry) get(id string) (*workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.items[id]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return w, nil
}

func (r *registry) put(w *workspace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[w.id] = w
}

func (r *registry) remove(id string) (*workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.items[id]
	delete(r.items, id)
	return w, ok
}

func (r *registry) drain() []*workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*workspace, 0, len(r.items))
	for id, w := range r.items {
		out = append(out, w)
		delete(r.items, id)
	}
	return out
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// OpenWorkspace starts a suggestion session for one editing session of the
// booking UI. It lives until CloseWorkspace, CloseAll or until no call has
// touched it for the idle timeout.
func (s *Service) OpenWorkspace(ctx context.Context) (*WorkspaceView, error) {
	id := s.ids.NewID()
	log := s.logger.With(logger.Field{Key: "workspace_id", Value: id})

	opts := s.sessions
	opts.Logger = log
	session := bundling.NewSession(opts)

	// The session outlives the request that opened it.
	sessionCtx, cancel := context.WithCancel(context.Background())
	session.Start(sessionCtx)

	w := &workspace{id: id, session: session, cancel: cancel}
	s.workspaces.put(w)
	s.touch(w)
	s.metrics.workspaceOpened(ctx)
	log.Info("workspace opened")

	return view(id, session), nil
}

// UpdateWorkspace replaces the itinerary snapshot of the workspace.
func (s *Service) UpdateWorkspace(ctx context.Context, id string, req WorkspaceRequest) (*WorkspaceView, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	w.session.Update(req.Items, req.Trip)
	return view(id, w.session), nil
}

func (s *Service) WorkspaceSuggestions(ctx context.Context, id string) (*WorkspaceView, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return view(id, w.session), nil
}

// Accept marks the suggestion accepted and reports the product tab to open.
func (s *Service) Accept(ctx context.Context, id, suggestionID string) (*AcceptResponse, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	accepted, err := w.session.Accept(suggestionID)
	if err != nil {
		return nil, err
	}
	s.metrics.suggestionAction(ctx, "accept", accepted.Type)

	return &AcceptResponse{
		Suggestion: accepted,
		NavigateTo: accepted.TargetTab,
		Workspace:  *view(id, w.session),
	}, nil
}

func (s *Service) Dismiss(ctx context.Context, id, suggestionID string) (*WorkspaceView, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if err := w.session.Dismiss(suggestionID); err != nil {
		return nil, err
	}
	s.metrics.suggestionAction(ctx, "dismiss", bundling.SuggestionType(suggestionID))
	return view(id, w.session), nil
}

// Snooze hides the suggestion for d. A zero d uses the configured default.
func (s *Service) Snooze(ctx context.Context, id, suggestionID string, d time.Duration) (*WorkspaceView, error) {
	if d < 0 || d > maxSnooze {
		return nil, validationError("snooze duration must be between 0 and %s", maxSnooze)
	}
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if err := w.session.Snooze(suggestionID, d); err != nil {
		return nil, err
	}
	s.metrics.suggestionAction(ctx, "snooze", bundling.SuggestionType(suggestionID))
	return view(id, w.session), nil
}

func (s *Service) Toggle(ctx context.Context, id string) (*WorkspaceView, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	w.session.Toggle()
	return view(id, w.session), nil
}

func (s *Service) Reset(ctx context.Context, id string) (*WorkspaceView, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	w.session.Reset()
	return view(id, w.session), nil
}

// CloseWorkspace stops the session timers and forgets the workspace.
func (s *Service) CloseWorkspace(ctx context.Context, id string) error {
	w, ok := s.workspaces.remove(id)
	if !ok {
		return ErrWorkspaceNotFound
	}

	w.close()
	s.metrics.workspaceClosed(ctx)
	s.logger.Info("workspace closed", logger.Field{Key: "workspace_id", Value: id})
	return nil
}

// CloseAll closes every open workspace. Used on shutdown.
func (s *Service) CloseAll() {
	closed := s.workspaces.drain()
	for _, w := range closed {
		w.close()
		s.metrics.workspaceClosed(context.Background())
	}
	if len(closed) > 0 {
		s.logger.Info("closed open workspaces", logger.Field{Key: "count", Value: len(closed)})
	}
}

// OpenWorkspaces reports how many sessions are live.
func (s *Service) OpenWorkspaces() int {
	return s.workspaces.len()
}

// lookup returns the workspace and pushes back its idle deadline.
func (s *Service) lookup(id string) (*workspace, error) {
	w, err := s.workspaces.get(id)
	if err != nil {
		return nil, err
	}
	s.touch(w)
	return w, nil
}

func (s *Service) touch(w *workspace) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.idle != nil {
		w.idle.timer.Stop()
	}
	entry := &idleTimer{}
	entry.timer = s.clock.AfterFunc(s.idle, func() { s.expire(w, entry) })
	w.idle = entry
}

// expire closes w unless it was touched or closed after entry was armed.
func (s *Service) expire(w *workspace, entry *idleTimer) {
	w.mu.Lock()
	if w.closed || w.idle != entry {
		w.mu.Unlock()
		return
	}
	w.idle = nil
	w.mu.Unlock()

	if _, ok := s.workspaces.remove(w.id); !ok {
		return
	}
	w.close()
	s.metrics.workspaceClosed(context.Background())
	s.logger.Info("workspace expired",
		logger.Field{Key: "workspace_id", Value: w.id},
		logger.Field{Key: "idle_timeout", Value: s.idle},
	)
}

func (w *workspace) close() {
	w.mu.Lock()
	w.closed = true
	if w.idle != nil {
		w.idle.timer.Stop()
		w.idle = nil
	}
	w.mu.Unlock()

	w.session.Close()
	w.cancel()
}

func view(id string, session *bundling.Session) *WorkspaceView {
	return &WorkspaceView{
		ID:          id,
		Enabled:     session.Enabled(),
		Suggestions: session.Visible(),
	}
}
