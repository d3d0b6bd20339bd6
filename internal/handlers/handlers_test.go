package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"VitalLog/internal/config"
	"VitalLog/internal/middleware"
	"VitalLog/internal/model"
	"VitalLog/internal/repo"
	"VitalLog/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestServer поднимает полный роутер поверх in-memory SQLite.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.HealthRecord{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM health_records")
		db.Exec("DELETE FROM users")
	})

	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)
	cfg := &config.Config{AuthSecret: testSecret}

	userService := service.NewUserService(repo.NewUserRepository(db))
	healthService := service.NewHealthService(repo.NewHealthRecordRepository(db), logger)
	h := NewHandler(userService, healthService, logger, cfg)

	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return ts
}

// doJSON выполняет запрос с JSON-телом и необязательной auth-cookie.
func doJSON(t *testing.T, method, url string, payload any, authUserID string) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authUserID != "" {
		token, err := middleware.BuildJWT(authUserID, testSecret)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// registerUser регистрирует пользователя через API и возвращает его id.
func registerUser(t *testing.T, baseURL, name, email string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/api/users", map[string]string{
		"name": name, "email": email, "password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var u struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &u))
	require.NotEmpty(t, u.ID)
	return u.ID
}
