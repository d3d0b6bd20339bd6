package model

import "time"

// HealthRecord — серверная модель одного показания здоровья.
// Запись неизменяема после создания: операций обновления и удаления нет.
type HealthRecord struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"type:uuid;not null;index" json:"userId"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	HeartRate     int       `gorm:"not null" json:"heartRate"`       // уд/мин
	BloodPressure string    `gorm:"not null" json:"bloodPressure"`   // "систолическое/диастолическое"
	OxygenLevel   int       `gorm:"not null" json:"oxygenLevel"`     // проценты, 0–100
	CreatedAt     time.Time `gorm:"not null;index" json:"createdAt"` // момент измерения, задаёт клиент
}
