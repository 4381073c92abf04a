package guard

import (
	"testing"

	"github.com/learnhub/lmscli/internal/state"
	"github.com/learnhub/lmscli/internal/tokenstore"
	"github.com/learnhub/lmscli/types"
)

func TestEvaluateTransitionTable(t *testing.T) {
	admin := &types.User{ID: 1, Role: types.RoleAdmin}
	student := &types.User{ID: 2, Role: types.RoleStudent}

	cases := []struct {
		name     string
		policy   Policy
		snap     state.Snapshot
		outcome  Outcome
		redirect string
	}{
		{
			name:    "not loaded",
			snap:    state.Snapshot{},
			outcome: OutcomePending,
		},
		{
			name:    "not loaded logged in flag meaningless",
			snap:    state.Snapshot{IsLoggedIn: true},
			outcome: OutcomePending,
		},
		{
			name:     "loaded logged out",
			snap:     state.Snapshot{IsLoaded: true},
			outcome:  OutcomeLoginRequired,
			redirect: DefaultLoginPath,
		},
		{
			name:     "custom login path",
			policy:   Policy{LoginPath: "/signin"},
			snap:     state.Snapshot{IsLoaded: true},
			outcome:  OutcomeLoginRequired,
			redirect: "/signin",
		},
		{
			name:     "role mismatch",
			policy:   Policy{RequiredRole: types.RoleAdmin},
			snap:     state.Snapshot{IsLoaded: true, IsLoggedIn: true, User: student},
			outcome:  OutcomeRoleDenied,
			redirect: DefaultUnauthorizedPath,
		},
		{
			name:     "role required but user missing",
			policy:   Policy{RequiredRole: types.RoleAdmin},
			snap:     state.Snapshot{IsLoaded: true, IsLoggedIn: true},
			outcome:  OutcomeRoleDenied,
			redirect: DefaultUnauthorizedPath,
		},
		{
			name:    "role satisfied",
			policy:  Policy{RequiredRole: types.RoleAdmin},
			snap:    state.Snapshot{IsLoaded: true, IsLoggedIn: true, User: admin},
			outcome: OutcomeGranted,
		},
		{
			name:    "no role required",
			snap:    state.Snapshot{IsLoaded: true, IsLoggedIn: true, User: student},
			outcome: OutcomeGranted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := tc.policy.Evaluate(tc.snap)
			if decision.Outcome != tc.outcome {
				t.Fatalf("outcome = %v, want %v", decision.Outcome, tc.outcome)
			}
			if decision.RedirectTo != tc.redirect {
				t.Fatalf("redirect = %q, want %q", decision.RedirectTo, tc.redirect)
			}
		})
	}
}

func TestGateNeverNavigatesBeforeLoad(t *testing.T) {
	navigations := 0
	gate := NewGate(Policy{RequiredRole: types.RoleAdmin}, NavigatorFunc(func(string) {
		navigations++
	}))

	snaps := []state.Snapshot{
		{},
		{IsLoggedIn: true},
		{User: &types.User{Role: types.RoleStudent}},
		{IsLoggedIn: true, User: &types.User{Role: types.RoleAdmin}},
	}
	for _, snap := range snaps {
		gate.Apply(snap)
	}

	if navigations != 0 {
		t.Fatalf("gate must not navigate before load, got %d navigations", navigations)
	}
}

func TestGateRoleMismatchRedirectsOnce(t *testing.T) {
	var targets []string
	gate := NewGate(Policy{RequiredRole: types.RoleAdmin}, NavigatorFunc(func(path string) {
		targets = append(targets, path)
	}))

	snap := state.Snapshot{
		IsLoaded:   true,
		IsLoggedIn: true,
		User:       &types.User{ID: 2, Role: types.RoleStudent},
	}

	decision := gate.Apply(snap)
	if decision.Outcome != OutcomeRoleDenied {
		t.Fatalf("unexpected outcome %v", decision.Outcome)
	}

	// Re-applying the same state must not navigate again.
	gate.Apply(snap)
	gate.Apply(snap)

	if len(targets) != 1 {
		t.Fatalf("expected exactly one navigation, got %v", targets)
	}
	if targets[0] != DefaultUnauthorizedPath {
		t.Fatalf("unexpected target %q", targets[0])
	}
}

func TestGateFiresAgainAfterTransition(t *testing.T) {
	var targets []string
	gate := NewGate(Policy{}, NavigatorFunc(func(path string) {
		targets = append(targets, path)
	}))

	loggedOut := state.Snapshot{IsLoaded: true}
	loggedIn := state.Snapshot{IsLoaded: true, IsLoggedIn: true, User: &types.User{ID: 1, Role: types.RoleStudent}}

	gate.Apply(loggedOut)
	gate.Apply(loggedIn)
	gate.Apply(loggedOut)

	if len(targets) != 2 {
		t.Fatalf("expected a navigation per transition into logged-out, got %v", targets)
	}
}

func TestGateBindObservesStore(t *testing.T) {
	store := state.New(tokenstore.NewMemoryStore(), nil)

	var targets []string
	gate := NewGate(Policy{}, NavigatorFunc(func(path string) {
		targets = append(targets, path)
	}))
	cancel := gate.Bind(store)
	defer cancel()

	if len(targets) != 0 {
		t.Fatalf("binding before load must not navigate, got %v", targets)
	}

	store.ClearSession()

	if len(targets) != 1 || targets[0] != DefaultLoginPath {
		t.Fatalf("expected a login redirect after the store settled, got %v", targets)
	}
}
