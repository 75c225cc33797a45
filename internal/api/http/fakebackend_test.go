package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for the Supabase backend: a GoTrue-shaped
// issuer minting signed access tokens plus a PostgREST-shaped Course
// table. Rows are kept per identity so a leaked handle would show up
// as one caller seeing another's rows.
type fakeBackend struct {
	t              *testing.T
	secret         []byte
	requireConfirm bool

	mu        sync.Mutex
	users     map[string]*fakeUser
	courses   map[string][]map[string]any
	restHits  int
	lastPatch map[string]any

	srv *httptest.Server
}

type fakeUser struct {
	id       string
	password string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		t:       t,
		secret:  []byte("fake-gotrue-secret"),
		users:   make(map[string]*fakeUser),
		courses: make(map[string][]map[string]any),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

// addUser registers a confirmed account and returns a valid access
// token for it, bypassing the signup flow.
func (b *fakeBackend) addUser(email, password string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := fmt.Sprintf("user-%d", len(b.users)+1)
	b.users[email] = &fakeUser{id: id, password: password}
	return b.mint(id, email)
}

func (b *fakeBackend) mint(sub, email string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(b.secret)
	require.NoError(b.t, err)
	return signed
}

func (b *fakeBackend) identity(r *http.Request) (sub, email string, ok bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", "", false
	}
	parsed, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(*jwt.Token) (any, error) {
		return b.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", "", false
	}
	claims, claimsOK := parsed.Claims.(jwt.MapClaims)
	if !claimsOK {
		return "", "", false
	}
	sub, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	return sub, email, sub != ""
}

func (b *fakeBackend) restHitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.restHits
}

func (b *fakeBackend) lastPatchKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.lastPatch))
	for k := range b.lastPatch {
		keys = append(keys, k)
	}
	return keys
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/auth/v1/health":
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/auth/v1/signup" && r.Method == http.MethodPost:
		b.handleSignup(w, r)
	case r.URL.Path == "/auth/v1/token" && r.Method == http.MethodPost:
		b.handleToken(w, r)
	case r.URL.Path == "/auth/v1/user" && r.Method == http.MethodGet:
		b.handleGetUser(w, r)
	case r.URL.Path == "/rest/v1/Course":
		b.handleCourses(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no such route"})
	}
}

func (b *fakeBackend) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body struct{ Email, Password string }
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[body.Email]; exists {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"msg": "User already registered"})
		return
	}
	id := fmt.Sprintf("user-%d", len(b.users)+1)
	b.users[body.Email] = &fakeUser{id: id, password: body.Password}

	if b.requireConfirm {
		writeJSON(w, http.StatusOK, map[string]string{
			"id":                   id,
			"email":                body.Email,
			"confirmation_sent_at": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": b.mint(id, body.Email),
		"token_type":   "bearer",
		"expires_in":   3600,
		"user":         map[string]string{"id": id, "email": body.Email},
	})
}

func (b *fakeBackend) handleToken(w http.ResponseWriter, r *http.Request) {
	var body struct{ Email, Password string }
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()
	user, exists := b.users[body.Email]
	if !exists || user.password != body.Password {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_grant",
			"error_description": "Invalid login credentials",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": b.mint(user.id, body.Email),
		"token_type":   "bearer",
		"expires_in":   3600,
		"user":         map[string]string{"id": user.id, "email": body.Email},
	})
}

func (b *fakeBackend) handleGetUser(w http.ResponseWriter, r *http.Request) {
	sub, email, ok := b.identity(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": sub, "email": email})
}

func (b *fakeBackend) handleCourses(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.restHits++
	b.mu.Unlock()

	sub, _, ok := b.identity(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "JWT expired or invalid"})
		return
	}

	id := strings.TrimPrefix(r.URL.Query().Get("id"), "eq.")

	b.mu.Lock()
	defer b.mu.Unlock()
	rows := b.courses[sub]

	switch r.Method {
	case http.MethodGet:
		if id == "" {
			if rows == nil {
				rows = []map[string]any{}
			}
			writeJSON(w, http.StatusOK, rows)
			return
		}
		for _, row := range rows {
			if row["id"] == id {
				writeJSON(w, http.StatusOK, row)
				return
			}
		}
		writeJSON(w, http.StatusNotAcceptable, map[string]string{
			"code":    "PGRST116",
			"message": "JSON object requested, multiple (or no) rows returned",
		})
	case http.MethodPost:
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.courses[sub] = append(rows, row)
		writeJSON(w, http.StatusCreated, row)
	case http.MethodPatch:
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		b.lastPatch = patch
		for _, row := range rows {
			if row["id"] == id {
				for k, v := range patch {
					row[k] = v
				}
				writeJSON(w, http.StatusOK, row)
				return
			}
		}
		writeJSON(w, http.StatusNotAcceptable, map[string]string{
			"code":    "PGRST116",
			"message": "JSON object requested, multiple (or no) rows returned",
		})
	case http.MethodDelete:
		kept := rows[:0]
		for _, row := range rows {
			if row["id"] != id {
				kept = append(kept, row)
			}
		}
		b.courses[sub] = kept
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	}
}
