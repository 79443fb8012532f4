package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nfrund/bloomly/internal/app"
	"github.com/nfrund/bloomly/internal/config"
	"github.com/nfrund/bloomly/internal/logging"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/session"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cliApp is the state shared by every command of one invocation.
type cliApp struct {
	fs         afero.Fs
	loadConfig func() *config.Config
	errOut     io.Writer

	// Flags.
	backendURL string
	homeDir    string
	format     string

	// Set up before a command runs.
	cfg       *config.Config
	container *app.Container
	deps      app.Dependencies
	marker    *session.FileMarker
	store     *session.Store
	auditing  bool
}

func newRootCmd(a *cliApp) *cobra.Command {
	root := &cobra.Command{
		Use:   "bloomly",
		Short: "Bloomly PCOS screening client",
		Long: `Bloomly is a command-line client for the Bloomly PCOS screening backend.

It keeps a local sign-in marker under BLOOMLY_HOME and talks to the backend
at BACKEND_URL. Detection and tracking require a signed-in session, exactly
like the web app.

Use "bloomly [command] --help" for more information about a command.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.backendURL, "backend", "", "backend base URL (overrides BACKEND_URL)")
	root.PersistentFlags().StringVar(&a.homeDir, "home", "", "directory holding the session marker (overrides BLOOMLY_HOME)")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", "table", "output format: table or json")

	root.AddCommand(
		newVersionCmd(),
		newServeCmd(a),
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newPredictCmd(a),
		newTrackingCmd(a),
	)
	return root
}

// setup loads configuration and resolves services. Logs go to stderr so
// command output stays parseable.
func (a *cliApp) setup(cmd *cobra.Command, _ []string) error {
	if a.format != "table" && a.format != "json" {
		return fmt.Errorf("unknown output format %q (want table or json)", a.format)
	}

	a.cfg = a.loadConfig()
	if a.backendURL != "" {
		a.cfg.BackendURL = a.backendURL
	}
	if a.homeDir != "" {
		a.cfg.HomeDir = a.homeDir
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logging.NewWithWriter(cmd.ErrOrStderr(), os.Getenv("LOG_FORMAT"), level)

	a.container = app.NewContainer(a.cfg)
	deps, err := a.container.Resolve()
	if err != nil {
		return err
	}
	a.deps = deps

	a.marker = session.NewFileMarker(a.fs, a.cfg.GetHomeDir())
	a.store = session.Load(a.marker)
	return nil
}

func (a *cliApp) close() {
	if a.container != nil {
		a.container.Shutdown()
		a.container = nil
	}
}

// startAudit subscribes the audit log before a command publishes events.
func (a *cliApp) startAudit(ctx context.Context) {
	if a.auditing {
		return
	}
	if err := a.deps.Audit.Start(ctx, a.deps.Bus); err != nil {
		fmt.Fprintf(a.errOut, "Warning: audit log unavailable: %v\n", err)
		return
	}
	a.auditing = true
}

// open runs page through the access gate. A gated page is an error telling
// the user to sign in first.
func (a *cliApp) open(page nav.Page) error {
	router := nav.NewRouter(a.deps.Gate, a.store, nil)
	d := router.Navigate(page.String())
	if d.Gated {
		return fmt.Errorf("%w: please sign in to view %s (run \"bloomly login\")", errSignInRequired, d.Requested.Label())
	}
	return nil
}

func publish[T any](ctx context.Context, a *cliApp, event pubsub.Event[T], payload T) {
	a.startAudit(ctx)
	if err := pubsub.Publish(ctx, a.deps.Bus, event, pubsub.SourceCLI, payload); err != nil {
		fmt.Fprintf(a.errOut, "Warning: failed to publish %s: %v\n", event.Name(), err)
	}
}

// Execute runs the CLI against the real filesystem and environment.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs(), config.New))
}

func run(args []string, out, errOut io.Writer, fs afero.Fs, loadConfig func() *config.Config) int {
	a := &cliApp{fs: fs, loadConfig: loadConfig, errOut: errOut}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}
