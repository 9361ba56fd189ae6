package bundling

// State is the lifecycle position of one suggestion id within a session.
type State string

const (
	StateActive    State = "active"
	StateDismissed State = "dismissed"
	StateAccepted  State = "accepted"
)

// stateStore holds only ids that left the active state.
type stateStore map[string]State

func (s stateStore) get(id string) State {
	if st, ok := s[id]; ok {
		return st
	}
	return StateActive
}

// suppressed reports whether id must be filtered out of the visible list.
func (s stateStore) suppressed(id string) bool {
	return s.get(id) != StateActive
}
