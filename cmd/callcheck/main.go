// Command callcheck validates confidential-computation calls against the
// compiled interface files of a build directory.
//
//	callcheck check --args args.yaml add_together
//	callcheck check --dynamic --args args.yaml add_together
//	callcheck list --build build
//	callcheck offset add_together
//	callcheck pda --program <key> --offset 42 --comp-def add_together
//	callcheck interactive
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/config"
	"github.com/wippyai/mxe-call/schema"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is shared by every command once Before has run.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *cli.App {
	e := &env{}

	buildFlag := &cli.StringFlag{
		Name:    "build",
		Aliases: []string{"b"},
		Usage:   "directory holding compiled interface files (overrides config)",
	}

	return &cli.App{
		Name:  "callcheck",
		Usage: "validate confidential-computation calls against compiled interfaces",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"CALLCHECK_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides config)",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if lvl := c.String("log-level"); lvl != "" {
				cfg.Log.Level = lvl
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger, err := cfg.CreateLogger()
			if err != nil {
				return err
			}
			computation.SetLogger(logger.Named("computation"))
			schema.SetLogger(logger.Named("schema"))

			e.cfg = cfg
			e.logger = logger
			return nil
		},
		After: func(c *cli.Context) error {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			checkCommand(e, buildFlag),
			listCommand(e, buildFlag),
			offsetCommand(),
			pdaCommand(),
			interactiveCommand(e, buildFlag),
		},
	}
}

// registry opens the build directory named by --build or the config.
func (e *env) registry(c *cli.Context) (*schema.Registry, error) {
	dir := e.cfg.BuildDir
	if b := c.String("build"); b != "" {
		dir = b
	}
	opts := append(e.cfg.RegistryOptions(), schema.WithLogger(e.logger.Named("registry")))
	return schema.NewRegistry(dir, opts...)
}
