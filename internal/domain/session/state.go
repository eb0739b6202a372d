package session

import (
	"fmt"
	"time"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateRefreshFailed   State = "refresh_failed"
)

func (s State) String() string {
	return string(s)
}

type EventKind string

const (
	EventLoginStarted     EventKind = "login_started"
	EventLoginSucceeded   EventKind = "login_succeeded"
	EventLoginFailed      EventKind = "login_failed"
	EventRefreshSucceeded EventKind = "refresh_succeeded"
	EventRefreshFailed    EventKind = "refresh_failed"
	EventLoggedOut        EventKind = "logged_out"
)

// Event drives the session lifecycle. Session is set for LoginSucceeded;
// Tokens, Now and Lifetime are set for RefreshSucceeded.
type Event struct {
	Kind     EventKind
	Session  Session
	Tokens   Tokens
	Now      time.Time
	Lifetime time.Duration
}

// InvalidTransitionError is returned when an event is not accepted in the current state.
type InvalidTransitionError struct {
	From  State
	Event EventKind
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid session transition: %s on %s", e.Event, e.From)
}

// Machine is the current lifecycle position. Session is only meaningful in
// StateAuthenticated and StateRefreshFailed.
type Machine struct {
	State   State
	Session Session
}

func Start() Machine {
	return Machine{State: StateUnauthenticated}
}

// Resume places an already-issued session into the machine.
func Resume(s Session) Machine {
	state := s.State
	if state == "" {
		state = StateAuthenticated
	}
	s.State = state
	return Machine{State: state, Session: s}
}

// Transition is a pure function of the current machine and the event.
func Transition(m Machine, ev Event) (Machine, error) {
	invalid := InvalidTransitionError{From: m.State, Event: ev.Kind}

	switch ev.Kind {
	case EventLoginStarted:
		if m.State != StateUnauthenticated && m.State != StateRefreshFailed {
			return m, invalid
		}
		return Machine{State: StateAuthenticating}, nil

	case EventLoginSucceeded:
		if m.State != StateAuthenticating {
			return m, invalid
		}
		s := ev.Session
		s.State = StateAuthenticated
		return Machine{State: StateAuthenticated, Session: s}, nil

	case EventLoginFailed:
		if m.State != StateAuthenticating {
			return m, invalid
		}
		return Machine{State: StateUnauthenticated}, nil

	case EventRefreshSucceeded:
		if m.State != StateAuthenticated {
			return m, invalid
		}
		return Machine{
			State:   StateAuthenticated,
			Session: m.Session.WithTokens(ev.Tokens, ev.Now, ev.Lifetime),
		}, nil

	case EventRefreshFailed:
		if m.State != StateAuthenticated {
			return m, invalid
		}
		return Machine{State: StateRefreshFailed, Session: m.Session.Expired()}, nil

	case EventLoggedOut:
		return Machine{State: StateUnauthenticated}, nil
	}

	return m, invalid
}
