//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

const (
	TestEmail    = "player@example.com"
	TestPassword = "password123"
	TestUserID   = "7"
	KnownCourtID = "court-1"
)

// FakeServices stands in for the user, facilities and booking services on one listener.
type FakeServices struct {
	mu           sync.Mutex
	accessToken  string
	refreshCalls int
	created      []map[string]string
}

func NewFakeServices() *FakeServices {
	f := &FakeServices{}
	f.Reset()
	return f
}

func (f *FakeServices) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessToken = "access-1"
	f.refreshCalls = 0
	f.created = nil
}

func (f *FakeServices) RefreshCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshCalls
}

func (f *FakeServices) Created() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.created...)
}

func (f *FakeServices) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", f.login)
	mux.HandleFunc("POST /auth/refresh_token", f.refresh)
	mux.HandleFunc("GET /auth/me", f.authorized(f.me))
	mux.HandleFunc("GET /reservation/", f.authorized(f.listReservations))
	mux.HandleFunc("POST /reservation/", f.authorized(f.createReservation))
	mux.HandleFunc("GET /api/v1/facilities/{id}", f.getFacility)
	return mux
}

func (f *FakeServices) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		want := "Bearer " + f.accessToken
		f.mu.Unlock()
		if r.Header.Get("Authorization") != want {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token"})
			return
		}
		next(w, r)
	}
}

func (f *FakeServices) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Email != TestEmail || body.Password != TestPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
		return
	}

	f.mu.Lock()
	token := f.accessToken
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"user":          map[string]any{"id": 7, "email": TestEmail, "name": "Player One"},
		"access_token":  token,
		"refresh_token": "refresh-1",
	})
}

func (f *FakeServices) refresh(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	f.refreshCalls++
	f.accessToken = "access-2"
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{
		"accessToken":  "access-2",
		"refreshToken": "refresh-2",
	})
}

func (f *FakeServices) me(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"id": 7, "email": TestEmail})
}

func (f *FakeServices) listReservations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{
			"id":          "r-1",
			"court_id":    KnownCourtID,
			"user_id":     TestUserID,
			"starts_at":   "2026-03-01T10:00:00Z",
			"ends_at":     "2026-03-01T11:00:00Z",
			"total_price": 24.5,
			"created_at":  "2026-02-20T09:00:00Z",
		},
		{
			"id":            "r-2",
			"court_id":      "court-gone",
			"user_id":       TestUserID,
			"starts_at":     "2026-03-02T10:00:00Z",
			"ends_at":       "2026-03-02T11:00:00Z",
			"created_at":    "2026-02-21T09:00:00Z",
			"cancelled_at":  "2026-02-22T09:00:00Z",
			"cancel_reason": "rain",
		},
	})
}

func (f *FakeServices) createReservation(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.created = append(f.created, body)
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"id": "r-new", "court_id": body["court_id"]})
}

func (f *FakeServices) getFacility(w http.ResponseWriter, r *http.Request) {
	if !strings.EqualFold(r.PathValue("id"), KnownCourtID) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":           KnownCourtID,
		"name":         "Tivoli",
		"address_line": "Celovska 25",
		"city":         "Ljubljana",
		"country":      "SI",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
