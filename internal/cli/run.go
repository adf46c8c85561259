// internal/cli/run.go
package ollamatool

import (
	"fmt"
	"io"

	"github.com/mwiater/ollamatool/internal/appconfig"
	"github.com/mwiater/ollamatool/internal/dispatch"
	"github.com/mwiater/ollamatool/internal/logging"
	"github.com/mwiater/ollamatool/internal/ollama"
	"github.com/spf13/cobra"
)

type clientFactory func(cfg appconfig.Config) dispatch.Fetcher

func defaultClientFactory(cfg appconfig.Config) dispatch.Fetcher {
	return ollama.NewClient(cfg)
}

// run selects the operation from the mode flags and executes it once.
func (opts *rootOptions) run(cmd *cobra.Command, args []string) error {
	if opts.showConfig {
		appconfig.ShowConfig(cmd.OutOrStdout(), opts.config.ConfigPath, opts.config)
		return nil
	}

	if len(args) > 0 {
		logging.Warn("Unknown argument provided: %s. Exiting.", args[0])
		printHelp(cmd)
		return nil
	}

	op, ok := dispatch.ParseOperation(opts.running, opts.list)
	if !ok {
		logging.Warn("No valid command provided. Exiting.")
		printHelp(cmd)
		return nil
	}

	logging.Debug("Resolved host %s, operation %s", opts.config.BaseURL(), op)
	d := dispatch.New(opts.newClient(opts.config), cmd.OutOrStdout())
	if err := d.Run(cmd.Context(), op); err != nil {
		if opts.config.Strict {
			return fmt.Errorf("%w: %v", errOperationFailed, err)
		}
	}
	return nil
}

// printHelp logs the usage summary followed by the full flag list.
func printHelp(cmd *cobra.Command) {
	logging.Info("Ollama Tool Usage:")
	logging.Info("  No arguments       : Check if Ollama is running")
	logging.Info("  -r                 : List running models")
	logging.Info("  -l                 : List available models")
	writeFlagUsages(cmd.OutOrStdout(), cmd)
}

func writeFlagUsages(out io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, cmd.LocalFlags().FlagUsages())
}
