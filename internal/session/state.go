package session

// Phase is the position of the session state machine.
//
//	PhaseRestoring -> PhaseAnonymous | PhaseAuthenticated   (startup)
//	PhaseAnonymous -> PhaseAuthenticated                    (login, signup)
//	PhaseAuthenticated -> PhaseAnonymous                    (logout)
type Phase int

const (
	PhaseRestoring Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseRestoring:
		return "restoring"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is the observable session state. User is nil except in
// PhaseAuthenticated.
type State struct {
	User  *User
	Phase Phase
}

// IsAuthenticated reports whether a user is logged in.
func (s State) IsAuthenticated() bool { return s.Phase == PhaseAuthenticated }

// IsLoading reports whether the startup restore has not resolved yet.
func (s State) IsLoading() bool { return s.Phase == PhaseRestoring }

// Event is the closed set of state-machine inputs.
type Event interface{ isEvent() }

// Restored resolves the startup phase: with a user when the stored marker
// was valid, without one otherwise.
type Restored struct{ User *User }

// LoggedIn records a successful login or signup.
type LoggedIn struct{ User *User }

// LoggedOut records a logout.
type LoggedOut struct{}

func (Restored) isEvent()  {}
func (LoggedIn) isEvent()  {}
func (LoggedOut) isEvent() {}

// Reduce is the pure state-transition function. Unknown events leave the
// state unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Restored:
		if e.User != nil {
			return State{User: e.User, Phase: PhaseAuthenticated}
		}
		return State{Phase: PhaseAnonymous}
	case LoggedIn:
		return State{User: e.User, Phase: PhaseAuthenticated}
	case LoggedOut:
		return State{Phase: PhaseAnonymous}
	default:
		return s
	}
}
