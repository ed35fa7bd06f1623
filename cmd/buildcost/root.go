package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/core/apiclient"
	"github.com/buildcost/buildcost-go/core/config"
	"github.com/buildcost/buildcost-go/core/logger"
	"github.com/buildcost/buildcost-go/core/session"
	"github.com/buildcost/buildcost-go/core/tokenstore"
	"github.com/buildcost/buildcost-go/integration/api/auth"
	"github.com/buildcost/buildcost-go/integration/api/estimates"
	"github.com/buildcost/buildcost-go/integration/api/projects"
	"github.com/buildcost/buildcost-go/integration/api/reports"
	"github.com/buildcost/buildcost-go/integration/api/subscriptions"
)

var errNotLoggedIn = errors.New("not logged in; run `buildcost login` first")

type appConfig struct {
	API apiclient.Config
	Log logger.Config

	// CredentialsFile overrides the default token location under the
	// user's config directory.
	CredentialsFile string `env:"BUILDCOST_CREDENTIALS_FILE"`
}

// app holds the wired client stack shared by every command.
type app struct {
	log     *slog.Logger
	tokens  *tokenstore.File
	session *session.Manager

	auth      *auth.Client
	estimates *estimates.Client
	projects  *projects.Client
	subs      *subscriptions.Client
	reports   *reports.Client

	out io.Writer
}

func newApp() (*app, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log, os.Stderr)

	tokens, err := tokenstore.NewFile(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	// The unauthorized hook closes over the manager, which does not exist
	// until the client it needs is built. The pointer is filled in below,
	// before any request can fire the hook.
	var mgr *session.Manager

	cred := apiclient.NewCredential()
	api, err := apiclient.New(cfg.API,
		apiclient.WithCredential(cred),
		apiclient.WithLogger(log),
		apiclient.WithUnauthorizedHook(func() {
			if mgr != nil {
				mgr.Invalidate(context.Background())
			}
			fmt.Fprintln(os.Stderr, styleWarning.Render("Session expired. Run `buildcost login` to sign in again."))
		}),
	)
	if err != nil {
		return nil, err
	}

	authClient := auth.New(api)
	mgr = session.MustNew(authClient, tokens, cred,
		session.WithNotifier(newNotifier(os.Stdout)),
		session.WithLogger(log),
	)

	return &app{
		log:       log,
		tokens:    tokens,
		session:   mgr,
		auth:      authClient,
		estimates: estimates.New(api),
		projects:  projects.New(api),
		subs:      subscriptions.New(api),
		reports:   reports.New(api),
		out:       os.Stdout,
	}, nil
}

// requireSession restores the session from the persisted token and fails
// the command when no valid session exists.
func (a *app) requireSession(ctx context.Context) error {
	if a.session.Current().IsAuthenticated() {
		return nil
	}
	if !a.session.Restore(ctx).IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "buildcost",
		Short: "BuildCost construction cost estimation client",
		Long: `buildcost talks to the BuildCost API: authenticate, price construction
projects, manage estimates and generate reports from the terminal.

Credentials are stored in the user config directory after login and
attached to every request until logout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newOTPCmd(a),
		newProfileCmd(a),
		newEstimateCmd(a),
		newCatalogCmd(a),
		newReportCmd(a),
		newSubscriptionCmd(a),
		newDashboardCmd(a),
	)
	return root
}
