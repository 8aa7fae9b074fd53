// Package cli is the interventions command line. It drives the scheduler service in process
// and shares the HTTP response envelope when --json is set
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"interventions/internal/platform/config"
	"interventions/internal/platform/config/raw"
	"interventions/internal/platform/logger"
	pnet "interventions/internal/platform/net"
	"interventions/internal/services/scheduler/repo"
	"interventions/internal/services/scheduler/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newID is a seam so tests can pin request ids
var newID = func() string { return uuid.NewString() }

// Config file and flag keys. A config file may set any of them
const (
	keyJSON    = "json"
	keyVerbose = "verbose"
	keyCorpus  = "corpus_file"
	keyRoster  = "roster_file"
)

type app struct {
	cfg     config.Conf
	v       *viper.Viper
	cfgFile string

	// load builds the service once per process; tests swap it
	load func(ctx context.Context) (service.Service, error)

	once sync.Once
	svc  service.Service
	err  error
}

// NewRootCmd builds the command tree. cfg is the unprefixed root config,
// seeds are read from CORE_SCHEDULER_* under it
func NewRootCmd(cfg config.Conf) *cobra.Command {
	a := &app{cfg: cfg, v: viper.New()}
	a.load = a.loadService

	root := &cobra.Command{
		Use:   "interventions-cli",
		Short: "Predict intervention urgency and match technicians",
		Long: `interventions-cli scores free text problem reports for urgency and picks the
best technician for a job. It runs the same scheduler the API serves, in process.

Seed data overrides come from --corpus and --roster, the config file, or
CORE_SCHEDULER_CORPUS_FILE and CORE_SCHEDULER_ROSTER_FILE, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := a.readConfig(); err != nil {
				return err
			}
			a.initLogger()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.interventions.yaml)")
	pf.Bool("json", false, "print the response envelope as JSON")
	pf.BoolP("verbose", "v", false, "log at debug level to stderr")
	pf.String("corpus", "", "urgency training corpus YAML file")
	pf.String("roster", "", "technician roster YAML file")

	_ = a.v.BindPFlag(keyJSON, pf.Lookup("json"))
	_ = a.v.BindPFlag(keyVerbose, pf.Lookup("verbose"))
	_ = a.v.BindPFlag(keyCorpus, pf.Lookup("corpus"))
	_ = a.v.BindPFlag(keyRoster, pf.Lookup("roster"))

	root.AddCommand(
		a.predictCmd(),
		a.rankCmd(),
		a.assessCmd(),
		a.techniciansCmd(),
		a.modelCmd(),
		a.demoCmd(),
		a.serveCmd(),
	)
	return root
}

// Execute runs the command line against the process environment.
// Errors are printed to stderr before being returned
func Execute(ctx context.Context) error {
	root := NewRootCmd(config.New())
	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return err
}

// readConfig loads --config, or $HOME/.interventions.yaml when present
func (a *app) readConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".interventions")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if errors.As(err, &missing) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// initLogger keeps stdout for command output. Logs go to stderr at warn unless
// LOG_LEVEL or --verbose says otherwise
func (a *app) initLogger() {
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Component = "cli"
	switch {
	case a.v.GetBool(keyVerbose):
		opt.Level = "debug"
	case raw.New().Prefix("LOG_").Get("LEVEL", "") == "":
		opt.Level = "warn"
	}
	logger.Init(opt)
}

func (a *app) loadService(ctx context.Context) (service.Service, error) {
	seeds := repo.New(a.cfg.Prefix("CORE_SCHEDULER_")).WithFiles(a.v.GetString(keyCorpus), a.v.GetString(keyRoster))
	return service.Load(ctx, seeds)
}

func (a *app) service(ctx context.Context) (service.Service, error) {
	a.once.Do(func() { a.svc, a.err = a.load(ctx) })
	return a.svc, a.err
}

// run gives fn a request scoped ctx and the loaded service, then renders the
// result as text or as the JSON envelope
func run[T any](a *app, cmd *cobra.Command, fn func(context.Context, service.Service) (T, error), text func(io.Writer, T)) error {
	reqID := newID()
	ctx := logger.WithRequest(pnet.WithRequest(cmd.Context(), reqID), reqID)

	var out T
	svc, err := a.service(ctx)
	if err == nil {
		out, err = fn(ctx, svc)
	}

	w := cmd.OutOrStdout()
	if a.v.GetBool(keyJSON) {
		var env pnet.Wire
		if err != nil {
			_, env = pnet.Error(err, reqID)
		} else {
			_, env = pnet.OK(out, reqID)
		}
		if werr := writeJSON(w, env); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}
	text(w, out)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
