package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/form"
	"github.com/nfrund/bloomly/internal/handlers"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *cliApp) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in and store the session marker",
		Example: `  bloomly login --email jane@example.com --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := domain.Validate(creds); err != nil {
				return fmt.Errorf("invalid input: %s", formatFieldErrors(domain.FieldErrors(err)))
			}

			var (
				sub    form.Submission
				result *domain.LoginResult
			)
			err := sub.Run(ctx, func(ctx context.Context) error {
				var err error
				result, err = a.deps.Backend.Login(ctx, creds)
				return err
			})
			if err != nil {
				return a.backendError(backend.LoginMessage(err), err)
			}

			if err := a.store.Login(); err != nil {
				return fmt.Errorf("%s (%w)", backend.MsgLoginUnavailable, err)
			}
			publish(ctx, a, pubsub.SessionLogin, pubsub.SessionPayload{Authenticated: true})

			fmt.Fprintln(cmd.OutOrStdout(), result.Greeting())
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(a *cliApp) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create a new account",
		Example: `  bloomly register --name Jane --email jane@example.com --password secret --confirm-password secret --accept-terms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := reg.CheckPasswords(); err != nil {
				return errors.New(domain.MsgPasswordMismatch)
			}
			if err := domain.Validate(reg); err != nil {
				return fmt.Errorf("invalid input: %s", formatFieldErrors(domain.FieldErrors(err)))
			}

			var sub form.Submission
			err := sub.Run(ctx, func(ctx context.Context) error {
				return a.deps.Backend.Register(ctx, reg)
			})
			if err != nil {
				return a.backendError(backend.RegisterMessage(err), err)
			}
			publish(ctx, a, pubsub.AccountRegistered, pubsub.AccountPayload{Name: reg.Name})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reg.Greeting())
			fmt.Fprintln(out, `Sign in with "bloomly login".`)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password")
	cmd.Flags().StringVar(&reg.ConfirmPassword, "confirm-password", "", "password again")
	cmd.Flags().BoolVar(&reg.AcceptTerms, "accept-terms", false, "agree to the Terms of Service and Privacy Policy")
	return cmd
}

func newLogoutCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the session marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Logout(); err != nil {
				return err
			}
			publish(cmd.Context(), a, pubsub.SessionLogout, pubsub.SessionPayload{Authenticated: false})
			fmt.Fprintln(cmd.OutOrStdout(), handlers.MsgLoggedOut)
			return nil
		},
	}
}

type statusOutput struct {
	Authenticated bool   `json:"authenticated"`
	Marker        string `json:"marker"`
	Backend       string `json:"backend"`
}

func newStatusCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session marker is present",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := statusOutput{
				Authenticated: a.store.IsAuthenticated(),
				Marker:        a.marker.Path(),
				Backend:       a.deps.Backend.BaseURL(),
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), status)
			}

			state := "signed out"
			if status.Authenticated {
				state = "signed in"
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Session:\t%s\n", state)
			fmt.Fprintf(w, "Marker:\t%s\n", status.Marker)
			fmt.Fprintf(w, "Backend:\t%s\n", status.Backend)
			return w.Flush()
		},
	}
}
