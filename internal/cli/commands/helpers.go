package commands

import (
	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/repo/fs"
	"VitalLog/internal/config"
	"errors"

	"go.uber.org/zap"
)

// ErrNotLoggedIn — команда требует аутентификации, а сессии нет.
var ErrNotLoggedIn = errors.New("not logged in: run 'login <email> <password>' first")

// newLogger создаёт логгер клиента: подробный при -v, иначе молчаливый.
func newLogger(cfg *config.Config) *zap.SugaredLogger {
	if cfg != nil && cfg.Verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			return l.Sugar()
		}
	}
	return zap.NewNop().Sugar()
}

// currentSession перечитывает хранилище сессии при каждом вызове:
// команда доверяет только диску, не памяти процесса.
func currentSession() (model.SessionRecord, error) {
	s, ok := (fs.SessionFSStore{}).Load()
	if !ok {
		return model.SessionRecord{}, ErrNotLoggedIn
	}
	return s, nil
}
