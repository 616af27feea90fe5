package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/confkit/config"
	"github.com/randalmurphal/confkit/consul"
	cferrors "github.com/randalmurphal/confkit/errors"
	cfhttp "github.com/randalmurphal/confkit/http"
	"github.com/randalmurphal/confkit/repository"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
)

type options struct {
	dir        string
	sources    []string
	encoding   string
	consulAddr string
	consulRoot string
	token      string
	consulRate float64
	verbose    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", explain(err))
	}
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitUsageError
	case cferrors.IsStartupError(err):
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

var errUsage = errors.New("usage error")

// explain adds a hint for rejected Consul credentials, and otherwise defers
// to errors.Explain.
func explain(err error) error {
	if cfhttp.IsAccessDenied(err) {
		return &cferrors.CLIError{
			Err:        err,
			Suggestion: "Check --consul-token: the Consul agent rejected the ACL token.",
		}
	}
	return cferrors.Explain(err)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "confkit",
		Short:         "Resolve configuration values from files, the environment and Consul",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dir, "dir", "", "directory to start discovery from (default: working directory)")
	pf.StringArrayVar(&opts.sources, "source", nil, "ordered source list, highest priority first; \".os\" is the environment")
	pf.StringVar(&opts.encoding, "encoding", "", "text encoding of configuration files")
	pf.StringVar(&opts.consulAddr, "consul-addr", consul.DefaultAddress, "Consul agent address")
	pf.StringVar(&opts.consulRoot, "consul-root", "", "read keys under this Consul prefix, after any --source")
	pf.StringVar(&opts.token, "consul-token", "", "Consul ACL token")
	pf.Float64Var(&opts.consulRate, "consul-rate", 0, "maximum Consul requests per second (0 is unlimited)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log discovery details to stderr")

	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print confkit version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "confkit version %s\n", version)
		},
	})

	return root
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolver builds the Getter described by the flags: MultiConfig when any
// explicit source is given, AutoConfig otherwise.
func (o *options) resolver(logger *slog.Logger) (resolver, error) {
	cfgOpts := []config.Option{config.WithLogger(logger), config.WithEncoding(o.encoding)}

	if len(o.sources) == 0 && o.consulRoot == "" {
		return config.NewAuto(o.dir, cfgOpts...), nil
	}
	if o.dir != "" {
		return nil, fmt.Errorf("%w: --dir cannot be combined with --source or --consul-root", errUsage)
	}

	sources := make([]any, 0, len(o.sources)+1)
	for _, s := range o.sources {
		sources = append(sources, s)
	}
	if o.consulRoot != "" {
		client := consul.NewClient(consul.Config{
			Address:   o.consulAddr,
			Token:     o.token,
			Logger:    logger,
			RateLimit: o.consulRate,
		})
		sources = append(sources, repository.NewRemote(client, o.consulRoot, repository.WithEncoding("utf-8")))
	}

	m := config.NewMulti(sources, cfgOpts...)
	m.Register("ini", repository.OpenIni)
	return m, nil
}

// resolver is the part of AutoConfig and MultiConfig the commands use.
type resolver interface {
	config.Getter
	Lookup(option string, opts ...config.LookupOption) (any, config.Source, error)
	Config() (*config.Config, error)
}
