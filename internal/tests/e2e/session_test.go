package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/lmscli/config"
	"github.com/learnhub/lmscli/internal/api"
	"github.com/learnhub/lmscli/internal/devserver"
	"github.com/learnhub/lmscli/internal/guard"
	"github.com/learnhub/lmscli/internal/session"
	"github.com/learnhub/lmscli/internal/state"
	"github.com/learnhub/lmscli/internal/tokenstore"
	"github.com/learnhub/lmscli/types"
)

// Scripted backend: a fixed token and a fixed profile, so the exact wire
// values can be asserted end to end.
func TestLoginFlowAgainstScriptedBackend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
		case "/users/profile":
			if r.Header.Get("Authorization") != "Bearer abc" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "fname": "Jane", "role": "admin"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	tokens := tokenstore.NewMemoryStore()
	client := api.NewClient(ts.URL, ts.Client(), zerolog.Nop())
	manager := session.NewManager(client, tokens, zerolog.Nop())
	manager.BaseDelay = time.Millisecond

	user, err := manager.Login(context.Background(), "jane@learnhub.dev", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Fname != "Jane" {
		t.Fatalf("unexpected user %+v", user)
	}

	token, err := tokens.Read()
	if err != nil || token != "abc" {
		t.Fatalf("token = %q, %v", token, err)
	}

	// A fresh store initialized from the persisted token must settle to
	// logged-in with the fetched profile.
	store := state.New(tokens, manager)
	store.Init(context.Background())

	snap := store.Snapshot()
	if !snap.IsLoaded || !snap.IsLoggedIn {
		t.Fatalf("unexpected session flags %+v", snap)
	}
	if snap.User == nil || snap.User.Fname != "Jane" {
		t.Fatalf("unexpected cached user %+v", snap.User)
	}

	decision := guard.Policy{RequiredRole: types.RoleAdmin}.Evaluate(snap)
	if decision.Outcome != guard.OutcomeGranted {
		t.Fatalf("expected access, got %v", decision.Outcome)
	}
}

func TestSessionLifecycleAgainstDevServer(t *testing.T) {
	srv, err := devserver.New(config.DevServerConfig{JWTSecret: "test-secret"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("dev server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	tokens := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	client := api.NewClient(ts.URL, ts.Client(), zerolog.Nop())
	manager := session.NewManager(client, tokens, zerolog.Nop())
	manager.BaseDelay = time.Millisecond

	user, err := manager.Login(context.Background(), "mia@learnhub.dev", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != types.RoleStudent {
		t.Fatalf("unexpected role %q", user.Role)
	}

	// Profile mutation: unknown fields are stripped before the request.
	token, err := tokens.Read()
	if err != nil {
		t.Fatalf("read token: %v", err)
	}
	updated, err := client.UpdateUser(context.Background(), token, user.ID, api.ProfileUpdate{
		Fields: map[string]any{"bio": "hello", "unexpectedField": "x"},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Bio != "hello" {
		t.Fatalf("bio not updated: %+v", updated)
	}

	store := state.New(tokens, manager)
	store.SetUser(&updated)

	store.Init(context.Background())
	snap := store.Snapshot()
	if !snap.IsLoggedIn || snap.User == nil || snap.User.Bio != "hello" {
		t.Fatalf("unexpected state %+v", snap)
	}

	// An invalidated token must tear the session down and trigger a
	// single login redirect.
	if err := tokens.Save("tampered"); err != nil {
		t.Fatalf("tamper token: %v", err)
	}

	freshStore := state.New(tokens, manager)
	var redirects []string
	gate := guard.NewGate(guard.Policy{}, guard.NavigatorFunc(func(path string) {
		redirects = append(redirects, path)
	}))
	cancel := gate.Bind(freshStore)
	defer cancel()

	freshStore.Init(context.Background())

	snap = freshStore.Snapshot()
	if snap.IsLoggedIn || snap.User != nil || !snap.IsLoaded {
		t.Fatalf("expected a logged-out session, got %+v", snap)
	}
	if _, err := tokens.Read(); !errors.Is(err, tokenstore.ErrNoToken) {
		t.Fatalf("rejected token must be cleared, got %v", err)
	}
	if len(redirects) != 1 || redirects[0] != guard.DefaultLoginPath {
		t.Fatalf("expected one login redirect, got %v", redirects)
	}
}
