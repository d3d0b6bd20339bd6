package service

import (
	"VitalLog/internal/model"
	"VitalLog/internal/repo"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBadRecord возвращается, когда показание не проходит проверку формы.
var ErrBadRecord = errors.New("malformed health record")

// HealthService инкапсулирует приём и выдачу показаний здоровья.
type HealthService struct {
	repo   repo.HealthRecordRepository
	logger *zap.SugaredLogger
}

func NewHealthService(r repo.HealthRecordRepository, logger *zap.SugaredLogger) *HealthService {
	return &HealthService{repo: r, logger: logger}
}

// Create сохраняет показание с серверным UUID. Медицинские диапазоны не
// проверяются, только присутствие и форма значений (контракт клиента тот же).
func (s *HealthService) Create(ctx context.Context, userID string, heartRate int, bloodPressure string, oxygenLevel int, createdAt time.Time) (*model.HealthRecord, error) {
	if userID == "" || heartRate <= 0 || bloodPressure == "" || oxygenLevel < 0 || oxygenLevel > 100 {
		return nil, ErrBadRecord
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	rec := &model.HealthRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		HeartRate:     heartRate,
		BloodPressure: bloodPressure,
		OxygenLevel:   oxygenLevel,
		CreatedAt:     createdAt,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Infow("health record stored", "user_id", userID, "record_id", rec.ID)
	return rec, nil
}

// ListByUser возвращает все показания пользователя, свежие первыми.
// Отсутствие показаний — пустой список, не ошибка.
func (s *HealthService) ListByUser(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	if userID == "" {
		return nil, ErrBadRecord
	}
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []model.HealthRecord{}
	}
	return recs, nil
}
