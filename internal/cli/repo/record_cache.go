package repo

import "VitalLog/internal/cli/model"

// RecordCache определяет порт локального кеша показаний для офлайн-просмотра.
// Кеш — копия последней удачной выгрузки с сервера, целиком замещаемая.
type RecordCache interface {
	// ReplaceAll атомарно замещает содержимое кеша переданным набором.
	ReplaceAll(recs []model.HealthRecord) error

	// ListRecords возвращает кешированные показания, свежие первыми.
	ListRecords() ([]model.HealthRecord, error)
}
