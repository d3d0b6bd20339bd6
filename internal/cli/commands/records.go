package commands

import (
	"VitalLog/internal/cli/api"
	"VitalLog/internal/cli/bootstrap"
	"VitalLog/internal/cli/model"
	"VitalLog/internal/cli/service"
	"VitalLog/internal/config"
	"context"
	"fmt"
	"strconv"
)

type recordsCmd struct{}

func (recordsCmd) Name() string { return "records" }
func (recordsCmd) Description() string {
	return "Show a page of your health history (newest first)"
}
func (recordsCmd) Usage() string { return "records [page] [--offline]" }

func (recordsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	page := 1
	offline := false
	for _, a := range args {
		if a == "--offline" {
			offline = true
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return ErrUsage
		}
		page = n
	}

	sess, err := currentSession()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	// офлайн-кеш: отсутствие — не препятствие для сетевого просмотра
	cache, done, cacheErr := bootstrap.OpenRecordCache()
	if cacheErr == nil {
		defer func() { _ = done() }()
	} else {
		if offline {
			return cacheErr
		}
		logger.Warnw("record cache unavailable", "error", cacheErr)
	}

	view := service.NewRecordsView(api.NewClient(cfg.ServerURL, sess.Token), cache, logger, cfg.PageSize)
	if offline {
		err = view.LoadCached(sess.ID)
	} else {
		err = view.Load(ctx, sess.ID)
	}
	if err != nil {
		return err
	}

	recs := view.Page(page)
	if view.TotalItems() == 0 {
		fmt.Fprintln(Out, "No records yet")
		return nil
	}
	for _, rec := range recs {
		printRecord(rec)
	}
	fmt.Fprintf(Out, "Page %d of %d (%d records)\n", view.CurrentPage(), view.TotalPages(), view.TotalItems())
	return nil
}

func printRecord(rec model.HealthRecord) {
	fmt.Fprintf(Out, "- %s  heart rate: %d bpm  blood pressure: %s  oxygen: %d%%\n",
		rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.HeartRate, rec.BloodPressure, rec.OxygenLevel)
}

func init() { RegisterCmd(recordsCmd{}) }
