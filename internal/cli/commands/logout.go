package commands

import (
	"VitalLog/internal/cli/repo/fs"
	"VitalLog/internal/cli/service"
	"VitalLog/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Sign out and forget the stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	ctrl := service.NewSessionController(nil, fs.SessionFSStore{}, newLogger(cfg))
	// Logout никогда не отказывает: сбой хранилища логируется внутри
	_ = ctrl.Logout()
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
