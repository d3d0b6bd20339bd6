package repo

import (
	"fmt"

	"VitalLog/internal/cli/model"
)

// SessionStore определяет порт долговременного хранения текущей сессии.
// В хранилище живёт не более одной записи.
type SessionStore interface {
	// Save сериализует запись сессии и замещает прежнее значение.
	// Сбой записи — StorageWriteError.
	Save(s model.SessionRecord) error

	// Load возвращает (запись, true) либо (нулевая запись, false), если
	// значения нет или оно не разбирается. Повреждённые данные считаются
	// отсутствующими и никогда не превращаются в ошибку.
	Load() (model.SessionRecord, bool)

	// Clear удаляет сохранённое значение. Идемпотентна: очистка пустого
	// хранилища — успешный no-op.
	Clear() error
}

// StorageWriteError — сбой записи в локальное хранилище устройства.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string { return fmt.Sprintf("storage write: %v", e.Err) }

func (e *StorageWriteError) Unwrap() error { return e.Err }
