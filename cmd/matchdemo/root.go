// Command matchdemo is a small CLI front end over package match, letting
// a user try pattern/subject pairs from a shell prompt without writing
// Go. Grounded on the retrieval pack's cobra-based command trees
// (o9nn-echo, theRebelliousNerd-codenerd): a root command carrying
// persistent --config/--dev flags, subcommands doing the actual work.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/client9/matchcore/internal/config"
	"github.com/client9/matchcore/internal/obslog"
)

var (
	configPath string
	devLogging bool

	cfg config.Config
	log *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matchdemo",
		Short: "Try pattern/subject matching against the matchcore engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, err = config.Load(configPath)
			} else {
				cfg = config.Default()
			}
			if err != nil {
				return err
			}
			cfg.Dev = cfg.Dev || devLogging
			log, err = obslog.New(cfg.Dev)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if log != nil {
				return log.Sync()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&devLogging, "dev", false, "use development-mode console logging")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newCanonCmd())
	return root
}

func newTraceLogger() (*zap.Logger, string) {
	traceID := uuid.NewString()
	return obslog.WithTrace(log, traceID), traceID
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
