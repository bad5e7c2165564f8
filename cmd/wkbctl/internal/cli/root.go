// Package cli implements the wkbctl commands.
package cli

import (
	"fmt"
	"os"

	"github.com/arloliu/wkb/codec"
	"github.com/arloliu/wkb/geomset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by the commands of one root command tree.
type app struct {
	// Global flags
	cfgFile      string
	outputFormat string
	logLevel     string

	// Set during PersistentPreRunE
	cfg       Config
	formatter Formatter
	logger    *zap.Logger
}

// NewRootCmd builds the wkbctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wkbctl",
		Short: "Inspect, normalize, pack and query WKB geometries",
		Long: `wkbctl works on 2D Well-Known Binary geometries stored as raw bytes or
hex text. It prints the structure of a geometry, rewrites it into another
byte order, packs many geometries into a checksummed geometry set and runs
bounding box queries over such a set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default \"warn\")")

	root.AddCommand(
		newInspectCmd(a),
		newNormalizeCmd(a),
		newPackCmd(a),
		newQueryCmd(a),
		newRoundtripCmd(a),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg := DefaultConfig()
	if a.cfgFile != "" {
		var err error
		cfg, err = LoadConfig(a.cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Override config with flags
	if a.outputFormat != "" {
		cfg.Output = a.outputFormat
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	codec.SetLogger(logger)
	geomset.SetLogger(logger)

	a.formatter = NewFormatter(cfg.Output)

	return nil
}

// newLogger builds a console logger on stderr. Debug level switches to the
// development encoder with caller information.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func (a *app) print(cmd *cobra.Command, data any) {
	fmt.Fprint(cmd.OutOrStdout(), a.formatter.Format(data))
}
