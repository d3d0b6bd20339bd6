package handlers

import (
	"VitalLog/internal/config"
	"VitalLog/internal/middleware"
	"VitalLog/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthHandler обрабатывает приём и выдачу показаний здоровья.
type HealthHandler struct {
	HealthService *service.HealthService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

// NewHealthHandler создаёт хендлер показаний
func NewHealthHandler(healthService *service.HealthService, logger *zap.SugaredLogger, cfg *config.Config) *HealthHandler {
	return &HealthHandler{HealthService: healthService, Logger: logger, Config: cfg}
}

type submitRequest struct {
	UserID        string `json:"userId"`
	HeartRate     int    `json:"heartRate"`
	BloodPressure string `json:"bloodPressure"`
	OxygenLevel   int    `json:"oxygenLevel"`
	CreatedAt     string `json:"createdAt,omitempty"` // RFC3339, опционально
}

// Submit принимает новое показание: POST /api/health-data
func (h *HealthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	// показания пишутся только от своего имени
	if req.UserID != uid {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var createdAt time.Time
	if req.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			http.Error(w, "createdAt must be RFC3339", http.StatusBadRequest)
			return
		}
		createdAt = t
	}

	rec, err := h.HealthService.Create(r.Context(), req.UserID, req.HeartRate, req.BloodPressure, req.OxygenLevel, createdAt)
	if err != nil {
		if errors.Is(err, service.ErrBadRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("submit health record", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// List выдаёт все показания пользователя: GET /api/health-data/{userID}
func (h *HealthHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "userID")
	if userID != uid {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	recs, err := h.HealthService.ListByUser(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("list health records", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(recs)
}
