package repo

import (
	"VitalLog/internal/model"
	"strings"

	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает подключение к БД и выполняет автомиграции.
// Пустой DSN или суффикс .db — локальный SQLite (dev-режим), иначе Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "vitallog.db"}
	case strings.HasSuffix(dsn, ".db") || strings.HasPrefix(dsn, "file:"):
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	default:
		dial = gormpg.Open(dsn)
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.HealthRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
