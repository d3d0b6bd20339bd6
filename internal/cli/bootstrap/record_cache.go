package bootstrap

import (
	"errors"
	"fmt"

	"VitalLog/internal/cli/repo"
	fsrepo "VitalLog/internal/cli/repo/fs"
	reposqlite "VitalLog/internal/cli/repo/sqlite"
)

// ErrNoSession — нет сохранённой сессии: пользователь не выполнял login.
var ErrNoSession = errors.New("no active session: run login first")

// OpenRecordCache открывает кеш показаний для текущего пользователя,
// выполняет миграции и возвращает (cache, cleanup, error).
// cleanup необходимо вызвать после окончания работы с кешем.
func OpenRecordCache() (repo.RecordCache, func() error, error) {
	session, ok := (fsrepo.SessionFSStore{}).Load()
	if !ok {
		return nil, nil, ErrNoSession
	}
	c, _, err := reposqlite.OpenForUser(session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("open user cache: %w", err)
	}
	if err := c.Migrate(); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate user cache: %w", err)
	}
	cleanup := func() error { return c.Close() }
	return c, cleanup, nil
}
