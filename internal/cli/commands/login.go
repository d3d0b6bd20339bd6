package commands

import (
	"VitalLog/internal/cli/api"
	"VitalLog/internal/cli/repo/fs"
	"VitalLog/internal/cli/service"
	"VitalLog/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store the session locally" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	ctrl := service.NewSessionController(api.NewClient(cfg.ServerURL, ""), fs.SessionFSStore{}, newLogger(cfg))
	s, err := ctrl.Login(ctx, args[0], args[1])
	if err != nil {
		if s.Valid() {
			// вход удался, но сессия не сохранилась: работаем до конца процесса
			fmt.Fprintf(Out, "Logged in as %s, but the session could not be saved: %v\n", s.Name, err)
			return nil
		}
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", s.Name, s.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
