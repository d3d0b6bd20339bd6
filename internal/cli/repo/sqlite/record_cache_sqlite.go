package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// RecordCacheSQLite — локальный кеш показаний пользователя (SQLite).
type RecordCacheSQLite struct {
	db     *sql.DB
	userID string
}

var _ repo.RecordCache = (*RecordCacheSQLite)(nil)

// OpenForUser открывает (и создаёт при необходимости) файл БД для указанного
// пользователя и возвращает кеш. Вторым значением возвращается путь к БД.
// Базовый каталог можно переопределить через CLIENT_DB_PATH.
func OpenForUser(userID string) (*RecordCacheSQLite, string, error) {
	if userID == "" {
		return nil, "", errors.New("empty user id for record cache")
	}
	base := os.Getenv("CLIENT_DB_PATH")
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "VitalLog", "users")
	}
	dir := filepath.Join(base, userID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "client.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &RecordCacheSQLite{db: db, userID: userID}, dbPath, nil
}

// Close закрывает соединение с БД.
func (r *RecordCacheSQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (r *RecordCacheSQLite) Migrate() error {
	_, err := r.db.Exec(initialDDL())
	return err
}

// ReplaceAll атомарно замещает содержимое кеша переданным набором.
// position фиксирует порядок набора, чтобы офлайн-просмотр совпадал
// с последним ответом сервера при равных created_at.
func (r *RecordCacheSQLite) ReplaceAll(recs []model.HealthRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	for i, rec := range recs {
		_, err := tx.Exec(`INSERT INTO records(id, user_id, heart_rate, blood_pressure, oxygen_level, created_at, position)
            VALUES(?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.UserID, rec.HeartRate, rec.BloodPressure, rec.OxygenLevel, rec.CreatedAt.UnixNano(), i,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListRecords возвращает кешированные показания, свежие первыми.
func (r *RecordCacheSQLite) ListRecords() ([]model.HealthRecord, error) {
	rows, err := r.db.Query(`SELECT id, user_id, heart_rate, blood_pressure, oxygen_level, created_at
        FROM records ORDER BY created_at DESC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.HealthRecord
	for rows.Next() {
		var rec model.HealthRecord
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.HeartRate, &rec.BloodPressure, &rec.OxygenLevel, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		res = append(res, rec)
	}
	return res, rows.Err()
}
