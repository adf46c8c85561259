// internal/cli/root.go
package ollamatool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mwiater/ollamatool/internal/appconfig"
	"github.com/mwiater/ollamatool/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// errOperationFailed is returned in strict mode after the failure was already logged.
var errOperationFailed = errors.New("operation failed")

// rootOptions carries per-invocation state for one command tree.
type rootOptions struct {
	cfgFile    string
	running    bool
	list       bool
	showConfig bool
	v          *viper.Viper
	config     appconfig.Config
	newClient  clientFactory
}

// NewRootCmd builds the ollamatool command. Every invocation gets its own
// viper instance so flags, env and config file never leak between runs.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New(), newClient: defaultClientFactory}
	return newRootCmd(opts)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ollamatool",
		Short:         "ollamatool — check a local Ollama daemon and list its models",
		Long:          `With no flags ollamatool reports whether Ollama is running. Use -r to list running models and -l to list available models.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.start(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	// cobra calls this before PersistentPreRunE, so start up here as well
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if startErr := opts.start(c); startErr != nil {
			logging.Warn("%v", startErr)
		}
		logging.Warn("Unknown flag provided: %v. Exiting.", err)
		printHelp(c)
		return nil
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.running, "running", "r", false, "list running models")
	flags.BoolVarP(&opts.list, "list", "l", false, "list available models")
	flags.BoolVar(&opts.showConfig, "showConfig", false, "print the resolved configuration and exit")

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&opts.cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (JSON, YAML or TOML)")
	pflags.String("host", "", "Ollama base URL (default "+appconfig.DefaultBaseURL+")")
	pflags.Int("timeout", 0, "request timeout in seconds (0 = default)")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.String("logFile", "", "also append logs to this file")
	pflags.Bool("strict", false, "exit with status 1 when the request fails")

	for _, name := range []string{"host", "timeout", "debug", "logFile", "strict"} {
		_ = opts.v.BindPFlag(name, pflags.Lookup(name))
	}
	opts.v.SetEnvPrefix(appconfig.EnvPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	return cmd
}

// start loads the configuration, opens the log sinks and logs the startup line.
func (opts *rootOptions) start(cmd *cobra.Command) error {
	if err := opts.loadConfig(cmd); err != nil {
		return err
	}
	logging.SetDebug(opts.config.Debug)
	if err := logging.Init(opts.config.LogFilePath()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.Info("Ollama tool started.")
	logging.Debug("Command-line arguments: %q", os.Args)
	return nil
}

// loadConfig merges flags > env > config file > defaults into opts.config.
func (opts *rootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := appconfig.Load(opts.v, opts.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	opts.config = cfg
	return nil
}

// Execute runs the root command against os.Args and exits non-zero only when
// the configuration is unusable or --strict saw a failed operation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logging.Close()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errOperationFailed) {
			logging.Error("%v", err)
		}
		stop()
		_ = logging.Close()
		os.Exit(1)
	}
}
