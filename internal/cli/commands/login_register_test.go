package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fsrepo "VitalLog/internal/cli/repo/fs"
	"VitalLog/internal/config"
)

// --- login tests ---
func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)
	captureOut(t)

	// HTTP сервер имитирует /api/users/login
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/users/login") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		// успех: 200 + тело пользователя + Set-Cookie
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","email":"alice@example.com"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"alice@example.com", "secret1"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// проверим, что сессия сохранена и валидна
	s, ok := (fsrepo.SessionFSStore{}).Load()
	if !ok {
		t.Fatalf("session not saved")
	}
	if s.ID != "u-1" || s.Token != "tok-123" {
		t.Fatalf("session mismatch: %+v", s)
	}

	// 401 Unauthorized
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
	}))
	defer ts401.Close()
	cfg401 := &config.Config{ServerURL: ts401.URL}
	if err := cmd.Run(context.Background(), cfg401, []string{"alice@example.com", "bad123"}); err == nil {
		t.Fatalf("expected error for 401")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyEmail"}); err == nil {
		t.Fatalf("expected ErrUsage for too few args")
	} else if err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// server 500 → ошибка
	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	cfg500 := &config.Config{ServerURL: ts500.URL}
	if err := cmd.Run(context.Background(), cfg500, []string{"a@b.c", "secret1"}); err == nil {
		t.Fatalf("expected error for 500")
	}
}

// --- register tests ---
func TestRegister_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/users") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u-9","name":"Bob","email":"bob@example.com"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	cmd := registerCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"Bob", "bob@example.com", "secret1"}); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}
	if !strings.Contains(out.String(), "u-9") {
		t.Fatalf("expected created id in output, got: %s", out.String())
	}
	// регистрация не создаёт сессию: вход — отдельный шаг
	if _, ok := (fsrepo.SessionFSStore{}).Load(); ok {
		t.Fatalf("register must not create a session")
	}

	// 409 Conflict
	ts409 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already in use", http.StatusConflict)
	}))
	defer ts409.Close()
	cfg409 := &config.Config{ServerURL: ts409.URL}
	if err := cmd.Run(context.Background(), cfg409, []string{"Bob", "bob@example.com", "secret1"}); err == nil {
		t.Fatalf("expected conflict error")
	}

	// пустое поле → ValidationError без сетевого вызова
	if err := cmd.Run(context.Background(), cfg, []string{"Bob", "", "secret1"}); err == nil {
		t.Fatalf("expected validation error for empty email")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyName"}); err == nil {
		t.Fatalf("expected ErrUsage on short args")
	} else if err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

// --- logout tests ---
func TestLogout_Run_ClearsSessionAndIsIdempotent(t *testing.T) {
	withTempConfig(t)
	captureOut(t)

	saveTestSession(t, "u-1", "alice", "tok")

	cmd := logoutCmd{}
	cfg := &config.Config{}
	if err := cmd.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := (fsrepo.SessionFSStore{}).Load(); ok {
		t.Fatalf("session must be cleared after logout")
	}
	// повторный logout — тоже успех
	if err := cmd.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("second logout must succeed: %v", err)
	}
}

// --- whoami tests ---
func TestWhoami_Run(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	cmd := whoamiCmd{}
	cfg := &config.Config{}

	// без сессии
	if err := cmd.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("whoami without session must not fail: %v", err)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Fatalf("expected 'Not logged in', got: %s", out.String())
	}

	out.Reset()
	saveTestSession(t, "u-1", "alice", "tok")
	if err := cmd.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out.String(), "u-1") || !strings.Contains(out.String(), "alice") {
		t.Fatalf("expected session info, got: %s", out.String())
	}
}
