package bundling

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"travelquote/internal/itinerary"
	"travelquote/pkg/clock"
	"travelquote/pkg/logger"
)

var ErrSuggestionNotFound = errors.New("suggestion not found")

const (
	DefaultTickInterval = 5 * time.Second
	DefaultSnooze       = 60 * time.Second
)

// Navigator switches the booking UI to the product tab of an accepted suggestion.
type Navigator func(target itinerary.Kind)

// Listener receives the visible suggestions after every re-evaluation.
type Listener func(visible []BundleSuggestion)

type Options struct {
	Clock         clock.Clock
	Logger        logger.Logger
	TickInterval  time.Duration
	DefaultSnooze time.Duration
	// MaxVisible caps Visible. Zero means no cap.
	MaxVisible int
	Navigator  Navigator
	Listener   Listener
}

// Session owns the suggestion lifecycle of one itinerary editing session:
// the latest itinerary snapshot, the accepted and dismissed ids, pending
// snooze timers and the periodic re-evaluation tick. Nothing is persisted.
type Session struct {
	mu sync.Mutex

	clock         clock.Clock
	logger        logger.Logger
	tickInterval  time.Duration
	defaultSnooze time.Duration
	maxVisible    int
	navigate      Navigator
	listener      Listener

	items   []itinerary.Item
	trip    itinerary.TripMetadata
	current []BundleSuggestion
	states  stateStore
	snoozes map[string]*snooze
	enabled bool

	tick    clock.Timer
	started bool
	closed  bool
	done    chan struct{}
}

type snooze struct {
	timer clock.Timer
}

func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.DefaultSnooze <= 0 {
		opts.DefaultSnooze = DefaultSnooze
	}

	s := &Session{
		clock:         opts.Clock,
		logger:        opts.Logger,
		tickInterval:  opts.TickInterval,
		defaultSnooze: opts.DefaultSnooze,
		maxVisible:    max(opts.MaxVisible, 0),
		navigate:      opts.Navigator,
		listener:      opts.Listener,
		states:        make(stateStore),
		snoozes:       make(map[string]*snooze),
		enabled:       true,
		done:          make(chan struct{}),
	}
	s.evaluateLocked()
	return s
}

// Start schedules the periodic re-evaluation that picks up rules depending on
// elapsed time. The session closes itself when ctx is cancelled.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.scheduleTickLocked()
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
}

// Close stops the tick and every pending snooze. It is safe to call twice.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
	s.stopSnoozesLocked()
	close(s.done)
}

// Update replaces the itinerary snapshot and re-evaluates the rules.
func (s *Session) Update(items []itinerary.Item, trip itinerary.TripMetadata) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.items = slices.Clone(items)
	s.trip = trip
	s.evaluateLocked()
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.notify(visible)
}

// Refresh re-evaluates against the current snapshot.
func (s *Session) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.evaluateLocked()
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.notify(visible)
}

// Visible is the evaluated list minus accepted, dismissed and expired ids.
// It is empty while suggestions are toggled off.
func (s *Session) Visible() []BundleSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleLocked()
}

// State reports the lifecycle state of a suggestion id.
func (s *Session) State(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states.get(id)
}

func (s *Session) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Accept marks a visible suggestion accepted for the rest of the session and
// navigates to its target product.
func (s *Session) Accept(id string) (BundleSuggestion, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return BundleSuggestion{}, ErrSuggestionNotFound
	}

	shown := s.visibleLocked()
	idx := slices.IndexFunc(shown, func(b BundleSuggestion) bool { return b.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return BundleSuggestion{}, ErrSuggestionNotFound
	}
	accepted := shown[idx]

	s.stopSnoozeLocked(id)
	s.states[id] = StateAccepted
	visible := s.visibleLocked()
	navigate := s.navigate
	s.mu.Unlock()

	s.logger.Info("suggestion accepted",
		logger.Field{Key: "suggestion_id", Value: id},
		logger.Field{Key: "target", Value: string(accepted.TargetTab)},
	)

	if navigate != nil {
		navigate(accepted.TargetTab)
	}
	s.notify(visible)
	return accepted, nil
}

// Dismiss hides the suggestion until Reset. Accepted ids stay accepted.
// Ids that name no rule return ErrSuggestionNotFound.
func (s *Session) Dismiss(id string) error {
	if !SuggestionType(id).Valid() {
		return ErrSuggestionNotFound
	}

	s.mu.Lock()
	if s.closed || s.states.get(id) == StateAccepted {
		s.mu.Unlock()
		return nil
	}
	s.stopSnoozeLocked(id)
	s.states[id] = StateDismissed
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.logger.Debug("suggestion dismissed", logger.Field{Key: "suggestion_id", Value: id})
	s.notify(visible)
	return nil
}

// Snooze dismisses the suggestion and restores it after d, or after the
// default delay when d is not positive. Snoozing again restarts the delay.
func (s *Session) Snooze(id string, d time.Duration) error {
	if !SuggestionType(id).Valid() {
		return ErrSuggestionNotFound
	}
	if d <= 0 {
		d = s.defaultSnooze
	}

	s.mu.Lock()
	if s.closed || s.states.get(id) == StateAccepted {
		s.mu.Unlock()
		return nil
	}
	s.stopSnoozeLocked(id)
	s.states[id] = StateDismissed

	entry := &snooze{}
	entry.timer = s.clock.AfterFunc(d, func() { s.wake(id, entry) })
	s.snoozes[id] = entry
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.logger.Debug("suggestion snoozed",
		logger.Field{Key: "suggestion_id", Value: id},
		logger.Field{Key: "delay", Value: d},
	)
	s.notify(visible)
	return nil
}

// Toggle flips the global switch and reports the new value. History is kept.
// A closed session keeps its last value.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	if s.closed {
		enabled := s.enabled
		s.mu.Unlock()
		return enabled
	}
	s.enabled = !s.enabled
	enabled := s.enabled
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.notify(visible)
	return enabled
}

// Reset forgets accepted and dismissed ids, cancels snoozes and re-enables suggestions.
func (s *Session) Reset() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopSnoozesLocked()
	s.states = make(stateStore)
	s.enabled = true
	s.evaluateLocked()
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.notify(visible)
}

func (s *Session) wake(id string, entry *snooze) {
	s.mu.Lock()
	if s.closed || s.snoozes[id] != entry {
		s.mu.Unlock()
		return
	}
	delete(s.snoozes, id)
	if s.states.get(id) == StateDismissed {
		delete(s.states, id)
	}
	s.evaluateLocked()
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.logger.Debug("snooze elapsed", logger.Field{Key: "suggestion_id", Value: id})
	s.notify(visible)
}

func (s *Session) onTick() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.scheduleTickLocked()
	s.evaluateLocked()
	visible := s.visibleLocked()
	s.mu.Unlock()

	s.notify(visible)
}

func (s *Session) scheduleTickLocked() {
	s.tick = s.clock.AfterFunc(s.tickInterval, s.onTick)
}

func (s *Session) evaluateLocked() {
	now := s.clock.Now()
	s.current = Evaluate(BuildTripContext(s.items, s.trip, now), now)
}

func (s *Session) visibleLocked() []BundleSuggestion {
	visible := make([]BundleSuggestion, 0, len(s.current))
	if !s.enabled {
		return visible
	}

	now := s.clock.Now()
	for _, b := range s.current {
		if s.states.suppressed(b.ID) || b.Expired(now) {
			continue
		}
		visible = append(visible, b)
		if s.maxVisible > 0 && len(visible) == s.maxVisible {
			break
		}
	}
	return visible
}

func (s *Session) stopSnoozeLocked(id string) {
	if entry, ok := s.snoozes[id]; ok {
		entry.timer.Stop()
		delete(s.snoozes, id)
	}
}

func (s *Session) stopSnoozesLocked() {
	for id := range s.snoozes {
		s.stopSnoozeLocked(id)
	}
}

func (s *Session) notify(visible []BundleSuggestion) {
	if s.listener != nil {
		s.listener(visible)
	}
}
