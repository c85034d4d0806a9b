// Package gate decides what a route renders given the session state.
package gate

import (
	"errors"
	"fmt"
	"strings"
)

// State is the session state seen by the gate.
type State int

const (
	// Initializing covers the restore from storage and a pending login.
	Initializing State = iota
	// Unauthenticated means no session user.
	Unauthenticated
	// Authenticated means a session user is set.
	Authenticated
	// ExcludedRoute is reported for public routes regardless of session.
	ExcludedRoute
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case ExcludedRoute:
		return "excluded_route"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event drives session state transitions.
type Event int

const (
	// Restored fires when restore finds a stored user.
	Restored Event = iota
	// RestoreEmpty fires when restore finds nothing or a corrupt entry.
	RestoreEmpty
	// LoginStarted fires when a login enters its delay.
	LoginStarted
	// LoginSucceeded fires when a login matched an identity.
	LoginSucceeded
	// LoginFailed fires when a login matched nothing.
	LoginFailed
	// LoggedOut fires on logout.
	LoggedOut
)

func (e Event) String() string {
	switch e {
	case Restored:
		return "restored"
	case RestoreEmpty:
		return "restore_empty"
	case LoginStarted:
		return "login_started"
	case LoginSucceeded:
		return "login_succeeded"
	case LoginFailed:
		return "login_failed"
	case LoggedOut:
		return "logged_out"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// ErrIllegalTransition is returned for an event the current state does not accept.
var ErrIllegalTransition = errors.New("illegal session transition")

// Transition returns the state reached from `from` on e.
// Logout is accepted from every session state.
func Transition(from State, e Event) (State, error) {
	if e == LoggedOut && from != ExcludedRoute {
		return Unauthenticated, nil
	}

	switch from {
	case Initializing:
		switch e {
		case Restored, LoginSucceeded:
			return Authenticated, nil
		case RestoreEmpty, LoginFailed:
			return Unauthenticated, nil
		}
	case Unauthenticated:
		if e == LoginStarted {
			return Initializing, nil
		}
	case Authenticated:
		// Logging in again on top of a session replaces the user.
		if e == LoginStarted {
			return Initializing, nil
		}
	}

	return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, e, from)
}

// Access classifies a route.
type Access int

const (
	// Protected routes need an authenticated session.
	Protected Access = iota
	// Public routes always render.
	Public
)

// Classifier resolves route access from a fixed set of excluded prefixes.
type Classifier struct {
	prefixes []string
}

// NewClassifier builds a classifier. Empty prefixes are ignored.
func NewClassifier(prefixes ...string) *Classifier {
	c := &Classifier{prefixes: make([]string, 0, len(prefixes))}
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		c.prefixes = append(c.prefixes, p)
	}
	return c
}

// Classify returns Public when path starts with an excluded prefix.
func (c *Classifier) Classify(path string) Access {
	for _, p := range c.prefixes {
		if strings.HasPrefix(path, p) {
			return Public
		}
	}
	return Protected
}

// Action is what the presentation layer must do.
type Action int

const (
	// Render shows the route content.
	Render Action = iota
	// Redirect sends the client to the login route.
	Redirect
	// Loading shows a placeholder until the session settles.
	Loading
)

func (a Action) String() string {
	switch a {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Decision is the outcome of Resolve.
type Decision struct {
	State  State
	Action Action
}

// Resolve combines the session state with route access.
func Resolve(session State, access Access) Decision {
	if access == Public {
		return Decision{State: ExcludedRoute, Action: Render}
	}

	switch session {
	case Authenticated:
		return Decision{State: Authenticated, Action: Render}
	case Initializing:
		return Decision{State: Initializing, Action: Loading}
	default:
		return Decision{State: Unauthenticated, Action: Redirect}
	}
}
