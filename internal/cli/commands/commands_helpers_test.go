package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"VitalLog/internal/cli/model"
	fsrepo "VitalLog/internal/cli/repo/fs"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (сессия/кеш) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	t.Setenv("CLIENT_DB_PATH", db)
	return dir
}

// captureOut подменяет общий writer CLI на буфер до конца теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

// saveTestSession кладёт готовую сессию в хранилище, минуя login.
func saveTestSession(t *testing.T, id, name, token string) {
	t.Helper()
	err := (fsrepo.SessionFSStore{}).Save(model.SessionRecord{ID: id, Name: name, Email: name + "@example.com", Token: token})
	if err != nil {
		t.Fatalf("save test session: %v", err)
	}
}
