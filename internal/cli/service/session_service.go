package service

import (
	"context"

	"VitalLog/internal/cli/model"
)

// SessionService описывает юзкейс-уровень сессии для CLI.
type SessionService interface {
	// Login аутентифицирует пользователя и сохраняет сессию локально.
	Login(ctx context.Context, email, password string) (model.SessionRecord, error)

	// Logout очищает локальную сессию. Никогда не блокируется сбоем хранилища.
	Logout() error

	// Current возвращает актуальную сессию, каждый раз перечитывая хранилище.
	Current() (model.SessionRecord, bool)
}
