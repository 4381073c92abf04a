package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProbeHealthyPrimary(t *testing.T) {
	var sawNoCache bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			sawNoCache = r.Header.Get("Cache-Control") == "no-cache"
			w.WriteHeader(http.StatusOK)
			return
		}
		t.Errorf("unexpected request to %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	probe := NewProbe(ts.Client(), ts.URL)
	if !probe.Check(context.Background()) {
		t.Fatal("expected reachable")
	}
	if !sawNoCache {
		t.Fatal("expected a no-cache probe request")
	}
}

func TestProbeFallsBackToCourses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case healthPath:
			w.WriteHeader(http.StatusInternalServerError)
		case fallbackPath:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	probe := NewProbe(ts.Client(), ts.URL)
	if !probe.Check(context.Background()) {
		t.Fatal("expected fallback to report reachable")
	}
}

func TestProbeBothEndpointsDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	probe := NewProbe(ts.Client(), ts.URL)
	if probe.Check(context.Background()) {
		t.Fatal("expected unreachable")
	}
}

func TestProbeNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	probe := NewProbe(http.DefaultClient, ts.URL)
	if probe.Check(context.Background()) {
		t.Fatal("expected unreachable after connection failure")
	}
}
