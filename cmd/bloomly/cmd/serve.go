package cmd

import (
	"github.com/nfrund/bloomly/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Bloomly web frontend",
		Long: `Run the web frontend on SERVER_ADDR. SESSION_SECRET must be set; it signs
the session cookie. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			s := server.New(a.deps)
			s.RegisterRoutes()
			return s.Start(cmd.Context())
		},
	}
}
