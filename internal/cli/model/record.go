package model

import "time"

// HealthRecord — одно показание здоровья, полученное от сервера.
// Запись неизменяема: клиент её не правит и не удаляет.
type HealthRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	HeartRate     int       `json:"heartRate"`     // уд/мин
	BloodPressure string    `json:"bloodPressure"` // "систолическое/диастолическое"
	OxygenLevel   int       `json:"oxygenLevel"`   // проценты, 0–100
	CreatedAt     time.Time `json:"createdAt"`
}
