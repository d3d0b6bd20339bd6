package repo

import (
	"VitalLog/internal/model"
	"context"

	"gorm.io/gorm"
)

// HealthRecordRepository определяет контракт доступа к показаниям здоровья.
// Записи неизменяемы: только вставка и выборка по владельцу.
type HealthRecordRepository interface {
	// Create сохраняет новое показание.
	Create(ctx context.Context, rec *model.HealthRecord) error

	// ListByUser возвращает все показания пользователя, свежие первыми.
	ListByUser(ctx context.Context, userID string) ([]model.HealthRecord, error)
}

type healthRecordRepo struct {
	db *gorm.DB
}

// NewHealthRecordRepository создаёт реализацию репозитория показаний.
func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepo{db: db}
}

func (r *healthRecordRepo) Create(ctx context.Context, rec *model.HealthRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *healthRecordRepo) ListByUser(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	var res []model.HealthRecord
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&res)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return res, nil
}
