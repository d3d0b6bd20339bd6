package service

import (
	"context"
	"errors"
	"sort"

	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/repo"
	"VitalLog/internal/config"

	"go.uber.org/zap"
)

// RecordFetcher — операция удалённого сервиса, нужная модели списка показаний.
type RecordFetcher interface {
	FetchRecords(ctx context.Context, userID string) ([]model.HealthRecord, error)
}

// ErrNotLoaded возвращается операциями, требующими предварительного Load.
var ErrNotLoaded = errors.New("records are not loaded")

// RecordsView — постраничная модель показаний пользователя: отсортированный
// по убыванию created_at набор, нарезаемый на страницы фиксированного размера.
// Набор всегда выгружается целиком; серверной пагинации в системе нет.
// Модель не потокобезопасна: операции выполняются последовательно.
type RecordsView struct {
	fetcher  RecordFetcher
	cache    repo.RecordCache // может быть nil
	logger   *zap.SugaredLogger
	pageSize int

	userID  string
	records []model.HealthRecord
	current int // 1-based; 0 — до первой загрузки
}

// NewRecordsView создаёт модель с фиксированным размером страницы.
// Неположительный pageSize заменяется размером по умолчанию.
// cache может быть nil — тогда офлайн-копия не ведётся.
func NewRecordsView(fetcher RecordFetcher, cache repo.RecordCache, logger *zap.SugaredLogger, pageSize int) *RecordsView {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RecordsView{fetcher: fetcher, cache: cache, logger: logger, pageSize: pageSize}
}

// Load выгружает показания пользователя, сортирует их свежими вперёд
// (при равных created_at порядок ответа сервера сохраняется) и сбрасывает
// текущую страницу на первую. Удачная выгрузка замещает офлайн-кеш;
// сбой кеша логируется, но наружу не поднимается.
func (v *RecordsView) Load(ctx context.Context, userID string) error {
	recs, err := v.fetcher.FetchRecords(ctx, userID)
	if err != nil {
		return err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	v.userID = userID
	v.records = recs
	v.current = 1

	if v.cache != nil {
		if err := v.cache.ReplaceAll(recs); err != nil {
			v.logger.Errorw("update record cache", "error", err)
		}
	}
	return nil
}

// LoadCached наполняет модель из офлайн-кеша вместо сети.
func (v *RecordsView) LoadCached(userID string) error {
	if v.cache == nil {
		return errors.New("record cache is not configured")
	}
	recs, err := v.cache.ListRecords()
	if err != nil {
		return err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	v.userID = userID
	v.records = recs
	v.current = 1
	return nil
}

// Refresh повторяет Load с тем же пользователем. Используется после отправки
// нового показания и при возврате к экрану списка; страница снова первая.
func (v *RecordsView) Refresh(ctx context.Context) error {
	if v.userID == "" {
		return ErrNotLoaded
	}
	return v.Load(ctx, v.userID)
}

// TotalItems возвращает число загруженных показаний.
func (v *RecordsView) TotalItems() int { return len(v.records) }

// TotalPages возвращает число страниц; пустой набор — одна пустая страница.
func (v *RecordsView) TotalPages() int {
	n := (len(v.records) + v.pageSize - 1) / v.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// CurrentPage возвращает номер текущей страницы (1-based).
func (v *RecordsView) CurrentPage() int {
	if v.current < 1 {
		return 1
	}
	return v.current
}

// clamp приводит номер страницы в допустимый диапазон [1, TotalPages].
func (v *RecordsView) clamp(n int) int {
	if n < 1 {
		return 1
	}
	if max := v.TotalPages(); n > max {
		return max
	}
	return n
}

// slice возвращает срез записей страницы n без копирования; n уже в диапазоне.
func (v *RecordsView) slice(n int) []model.HealthRecord {
	lo := (n - 1) * v.pageSize
	hi := lo + v.pageSize
	if lo > len(v.records) {
		lo = len(v.records)
	}
	if hi > len(v.records) {
		hi = len(v.records)
	}
	return v.records[lo:hi]
}

// Page делает текущей страницу n (с зажимом в допустимый диапазон)
// и возвращает её записи. Запрос вне диапазона — не ошибка: молча
// возвращается ближайшая валидная страница.
func (v *RecordsView) Page(n int) []model.HealthRecord {
	v.current = v.clamp(n)
	return v.slice(v.current)
}

// NextPage листает вперёд; на последней странице — no-op.
func (v *RecordsView) NextPage() []model.HealthRecord {
	return v.Page(v.CurrentPage() + 1)
}

// PrevPage листает назад; на первой странице — no-op.
func (v *RecordsView) PrevPage() []model.HealthRecord {
	return v.Page(v.CurrentPage() - 1)
}
