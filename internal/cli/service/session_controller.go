package service

import (
	"context"
	"fmt"

	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/repo"

	"go.uber.org/zap"
)

// LoginGateway — операция удалённого сервиса, нужная контроллеру сессии.
type LoginGateway interface {
	Login(ctx context.Context, email, password string) (model.SessionRecord, error)
}

// SessionController — контроллер жизненного цикла сессии: два состояния,
// «аноним» и «аутентифицирован», выводимые из хранилища сессии.
type SessionController struct {
	gw      LoginGateway
	store   repo.SessionStore
	logger  *zap.SugaredLogger
	current *model.SessionRecord // сессия текущего процесса (in-memory)
}

var _ SessionService = (*SessionController)(nil)

// NewSessionController создаёт контроллер поверх шлюза и хранилища сессии.
func NewSessionController(gw LoginGateway, store repo.SessionStore, logger *zap.SugaredLogger) *SessionController {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionController{gw: gw, store: store, logger: logger}
}

// Login выполняет вход через шлюз и сохраняет сессию в хранилище.
// Если сессию не удалось сохранить, ошибка поднимается наверх: вход,
// не переживающий перезапуск, нельзя молча считать успешным. Состояние
// текущего процесса при этом остаётся аутентифицированным.
func (c *SessionController) Login(ctx context.Context, email, password string) (model.SessionRecord, error) {
	s, err := c.gw.Login(ctx, email, password)
	if err != nil {
		return model.SessionRecord{}, err
	}
	c.current = &s
	if err := c.store.Save(s); err != nil {
		c.logger.Errorw("persist session", "error", err)
		return s, fmt.Errorf("session will not survive restart: %w", err)
	}
	return s, nil
}

// Logout очищает хранилище сессии. Сбой очистки логируется, но переход
// в анонимное состояние не блокируется: намерение пользователя выйти
// не должно упираться в сбой диска.
func (c *SessionController) Logout() error {
	c.current = nil
	if err := c.store.Clear(); err != nil {
		c.logger.Errorw("clear session", "error", err)
	}
	return nil
}

// Current каждый раз перечитывает хранилище, не доверяя памяти процесса:
// сессия, очищенная другой частью приложения, должна быть замечена сразу.
func (c *SessionController) Current() (model.SessionRecord, bool) {
	s, ok := c.store.Load()
	if !ok {
		c.current = nil
		return model.SessionRecord{}, false
	}
	c.current = &s
	return s, true
}
