package commands

import (
	"VitalLog/internal/cli/api"
	"VitalLog/internal/cli/bootstrap"
	"VitalLog/internal/cli/service"
	"VitalLog/internal/config"
	"context"
	"fmt"
)

type submitCmd struct{}

func (submitCmd) Name() string { return "submit" }
func (submitCmd) Description() string {
	return "Record a new health reading"
}
func (submitCmd) Usage() string { return "submit <heartRate> <bloodPressure> <oxygenLevel>" }

func (submitCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	sess, err := currentSession()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	client := api.NewClient(cfg.ServerURL, sess.Token)
	rec, err := client.SubmitRecord(ctx, sess.ID, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Recorded:")
	printRecord(rec)

	// после отправки перечитываем набор, чтобы офлайн-кеш и счётчик страниц
	// отражали свежую запись; сбой здесь не отменяет уже принятое показание
	cache, done, cacheErr := bootstrap.OpenRecordCache()
	if cacheErr != nil {
		logger.Warnw("record cache unavailable", "error", cacheErr)
		return nil
	}
	defer func() { _ = done() }()
	view := service.NewRecordsView(client, cache, logger, cfg.PageSize)
	if err := view.Load(ctx, sess.ID); err != nil {
		logger.Warnw("refresh after submit", "error", err)
		return nil
	}
	fmt.Fprintf(Out, "Total records: %d\n", view.TotalItems())
	return nil
}

func init() { RegisterCmd(submitCmd{}) }
