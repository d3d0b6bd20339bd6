package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/repo"
)

// SessionFSStore — файловое хранилище текущей сессии для CLI.
// Единственный файл session.json в пользовательском конфиг-каталоге.
type SessionFSStore struct{}

var _ repo.SessionStore = SessionFSStore{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "VitalLog")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func sessionPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// Save сериализует запись сессии в файл, замещая прежнюю.
func (SessionFSStore) Save(s model.SessionRecord) error {
	p, err := sessionPath()
	if err != nil {
		return &repo.StorageWriteError{Err: err}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return &repo.StorageWriteError{Err: err}
	}
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return &repo.StorageWriteError{Err: err}
	}
	return nil
}

// Load читает запись сессии. Отсутствующий, пустой или не разбираемый файл —
// это «записи нет», а не ошибка; повреждённый файл при этом удаляется.
func (SessionFSStore) Load() (model.SessionRecord, bool) {
	p, err := sessionPath()
	if err != nil {
		return model.SessionRecord{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil || len(b) == 0 {
		return model.SessionRecord{}, false
	}
	var s model.SessionRecord
	if err := json.Unmarshal(b, &s); err != nil || !s.Valid() {
		// повреждённая запись операционно эквивалентна отсутствующей
		_ = os.Remove(p)
		return model.SessionRecord{}, false
	}
	return s, true
}

// Clear удаляет файл сессии. Отсутствие файла — успех.
func (SessionFSStore) Clear() error {
	p, err := sessionPath()
	if err != nil {
		return &repo.StorageWriteError{Err: err}
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return &repo.StorageWriteError{Err: err}
	}
	return nil
}
