package commands

import (
	"VitalLog/internal/cli/api"
	"VitalLog/internal/config"
	"context"
	"fmt"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	client := api.NewClient(cfg.ServerURL, "")
	id, err := client.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered: %s\n", id)
	fmt.Fprintln(Out, "Use 'login <email> <password>' to sign in")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
