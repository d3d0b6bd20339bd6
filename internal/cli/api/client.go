package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/validate"
)

// Client — шлюз к удалённому сервису здоровья. Каждая операция — ровно один
// сетевой запрос: без повторов и без кеширования; кеширование сессии —
// забота контроллера сессии.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient создаёт шлюз для baseURL. token — auth-cookie сервера,
// пустая строка для анонимных вызовов.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
}

// postJSON отправляет JSON POST. Если token непуст — передаётся auth-cookie.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Cookie", "auth_token="+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// getJSON выполняет GET-запрос с auth-cookie, если токен установлен.
func (c *Client) getJSON(ctx context.Context, path string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, nil, err
	}
	if c.token != "" {
		req.Header.Set("Cookie", "auth_token="+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// authTokenFromResponse вытаскивает auth-cookie из ответа, если она есть.
func authTokenFromResponse(resp *http.Response) string {
	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return ck.Value
		}
	}
	return ""
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register создаёт пользователя: POST /api/users. Возвращает id созданного
// пользователя. Пустые или некорректные поля отвергаются до сетевого вызова.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", validationf("name, email and password are required")
	}
	if !validate.IsEmailValid(email) {
		return "", validationf("malformed email: %q", email)
	}
	if !validate.IsPasswordStrong(password) {
		return "", validationf("password must be at least 6 characters and contain a digit")
	}

	resp, body, err := c.postJSON(ctx, "/api/users", registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", remoteTransport(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", remoteStatus(resp.StatusCode, body)
	}
	var u userPayload
	if err := json.Unmarshal(body, &u); err != nil {
		return "", &RemoteError{Status: resp.StatusCode, Reason: "malformed user payload", Err: err}
	}
	return u.ID, nil
}

// Login аутентифицирует пользователя: POST /api/users/login. Возвращает запись
// сессии с auth-токеном сервера, ничего не сохраняя: персистентность — забота
// контроллера сессии.
func (c *Client) Login(ctx context.Context, email, password string) (model.SessionRecord, error) {
	if email == "" || password == "" {
		return model.SessionRecord{}, validationf("email and password are required")
	}

	resp, body, err := c.postJSON(ctx, "/api/users/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return model.SessionRecord{}, remoteTransport(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.SessionRecord{}, remoteStatus(resp.StatusCode, body)
	}
	var u userPayload
	if err := json.Unmarshal(body, &u); err != nil {
		return model.SessionRecord{}, &RemoteError{Status: resp.StatusCode, Reason: "malformed user payload", Err: err}
	}
	if u.ID == "" {
		return model.SessionRecord{}, &RemoteError{Status: resp.StatusCode, Reason: "login response without user id"}
	}
	return model.SessionRecord{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Token: authTokenFromResponse(resp),
	}, nil
}

// FetchRecords выгружает все показания пользователя: GET /api/health-data/{userId}.
// Отсутствие показаний — пустой срез, не ошибка.
func (c *Client) FetchRecords(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	if userID == "" {
		return nil, validationf("user id is required")
	}

	resp, body, err := c.getJSON(ctx, "/api/health-data/"+userID)
	if err != nil {
		return nil, remoteTransport(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, remoteStatus(resp.StatusCode, body)
	}
	var recs []model.HealthRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &RemoteError{Status: resp.StatusCode, Reason: "malformed records payload", Err: err}
	}
	if recs == nil {
		recs = []model.HealthRecord{}
	}
	return recs, nil
}

type submitRequest struct {
	UserID        string `json:"userId"`
	HeartRate     int    `json:"heartRate"`
	BloodPressure string `json:"bloodPressure"`
	OxygenLevel   int    `json:"oxygenLevel"`
	CreatedAt     string `json:"createdAt"`
}

// SubmitRecord отправляет новое показание: POST /api/health-data.
// Все три значения обязательны и проверяются на форму до сетевого вызова;
// медицинские диапазоны не проверяются. Момент измерения задаёт клиент.
func (c *Client) SubmitRecord(ctx context.Context, userID, heartRate, bloodPressure, oxygenLevel string) (model.HealthRecord, error) {
	if userID == "" {
		return model.HealthRecord{}, validationf("user id is required")
	}
	hr, err := validate.HeartRate(heartRate)
	if err != nil {
		return model.HealthRecord{}, &ValidationError{Reason: err.Error()}
	}
	bp, err := validate.BloodPressure(bloodPressure)
	if err != nil {
		return model.HealthRecord{}, &ValidationError{Reason: err.Error()}
	}
	ox, err := validate.OxygenLevel(oxygenLevel)
	if err != nil {
		return model.HealthRecord{}, &ValidationError{Reason: err.Error()}
	}

	resp, body, err := c.postJSON(ctx, "/api/health-data", submitRequest{
		UserID:        userID,
		HeartRate:     hr,
		BloodPressure: bp,
		OxygenLevel:   ox,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return model.HealthRecord{}, remoteTransport(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return model.HealthRecord{}, remoteStatus(resp.StatusCode, body)
	}
	var rec model.HealthRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return model.HealthRecord{}, &RemoteError{Status: resp.StatusCode, Reason: "malformed record payload", Err: err}
	}
	return rec, nil
}
