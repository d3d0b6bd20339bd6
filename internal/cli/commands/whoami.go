package commands

import (
	"VitalLog/internal/config"
	"context"
	"fmt"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current session" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := currentSession()
	if err != nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(Out, "%s <%s>\n", s.Name, s.Email)
	fmt.Fprintf(Out, "  id: %s\n", s.ID)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
