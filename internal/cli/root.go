// Package cli wires the contiguous-bench command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/contiguous/internal/config"
	"github.com/pavanmanishd/contiguous/internal/logging"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	debug      bool
	logFormat  string
	configPath string
}

func (g *globals) loadConfig() (config.Config, error) {
	if g.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(g.configPath)
}

func (g *globals) logger() (*zap.Logger, error) {
	l, err := logging.New(logging.Options{Debug: g.debug, Format: g.logFormat})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "contiguous-bench",
		Short:        "Compare builtin slices with the contiguous containers",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log every measurement")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "console", "Log format: json|console")
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file (optional; defaults are used if omitted)")

	cmd.AddCommand(runCmd(g))
	cmd.AddCommand(configCmd(g))
	return cmd
}
