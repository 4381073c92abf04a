// Package guard decides whether session state grants access, with the
// redirect modeled as an explicit emitted command rather than a side
// effect of evaluation.
package guard

import (
	"sync"

	"github.com/learnhub/lmscli/internal/state"
)

// Outcome is the gate's decision for a given session snapshot.
type Outcome int

const (
	// OutcomePending means the initial load has not completed; show a
	// loading indicator and do not navigate.
	OutcomePending Outcome = iota

	// OutcomeLoginRequired means the session is confirmed logged-out.
	OutcomeLoginRequired

	// OutcomeRoleDenied means the user is logged in but lacks the
	// required role.
	OutcomeRoleDenied

	// OutcomeGranted means access is allowed.
	OutcomeGranted
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeLoginRequired:
		return "login required"
	case OutcomeRoleDenied:
		return "role denied"
	case OutcomeGranted:
		return "granted"
	default:
		return "unknown"
	}
}

// Decision is an evaluated outcome plus the redirect command to emit, if
// any.
type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

// Default redirect targets.
const (
	DefaultLoginPath        = "/login"
	DefaultUnauthorizedPath = "/unauthorized"
)

// Policy is the access requirement for a protected surface.
type Policy struct {
	// RequiredRole, when non-empty, must match the user's role exactly.
	RequiredRole string

	// LoginPath overrides the redirect target for a logged-out session.
	LoginPath string

	// UnauthorizedPath overrides the redirect target for a role
	// mismatch.
	UnauthorizedPath string
}

// Evaluate maps a session snapshot to a decision. It is pure: no
// navigation happens here.
func (p Policy) Evaluate(snap state.Snapshot) Decision {
	if !snap.IsLoaded {
		return Decision{Outcome: OutcomePending}
	}
	if !snap.IsLoggedIn {
		return Decision{Outcome: OutcomeLoginRequired, RedirectTo: p.loginPath()}
	}
	if p.RequiredRole != "" && (snap.User == nil || snap.User.Role != p.RequiredRole) {
		return Decision{Outcome: OutcomeRoleDenied, RedirectTo: p.unauthorizedPath()}
	}
	return Decision{Outcome: OutcomeGranted}
}

func (p Policy) loginPath() string {
	if p.LoginPath != "" {
		return p.LoginPath
	}
	return DefaultLoginPath
}

func (p Policy) unauthorizedPath() string {
	if p.UnauthorizedPath != "" {
		return p.UnauthorizedPath
	}
	return DefaultUnauthorizedPath
}

// Navigator receives the redirect command.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Gate applies a policy to successive snapshots and emits each redirect at
// most once per outcome transition. Re-applying an unchanged state does
// not navigate again.
type Gate struct {
	policy Policy
	nav    Navigator

	mu      sync.Mutex
	last    Outcome
	hasLast bool
}

func NewGate(policy Policy, nav Navigator) *Gate {
	return &Gate{policy: policy, nav: nav}
}

// Apply evaluates the snapshot, fires the navigator when the outcome
// transitioned into a redirecting state, and returns the decision.
func (g *Gate) Apply(snap state.Snapshot) Decision {
	decision := g.policy.Evaluate(snap)

	g.mu.Lock()
	fire := decision.RedirectTo != "" && (!g.hasLast || g.last != decision.Outcome)
	g.last = decision.Outcome
	g.hasLast = true
	g.mu.Unlock()

	if fire && g.nav != nil {
		g.nav.Navigate(decision.RedirectTo)
	}
	return decision
}

// Bind subscribes the gate to a state store, applies the current snapshot
// once, and returns the unsubscribe function.
func (g *Gate) Bind(store *state.Store) func() {
	cancel := store.Subscribe(func(snap state.Snapshot) {
		g.Apply(snap)
	})
	g.Apply(store.Snapshot())
	return cancel
}
