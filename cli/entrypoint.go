package cli

import (
	"fmt"

	"github.com/carlmontanari/wireplan/logging"
	"github.com/carlmontanari/wireplan/wireplan"
	"github.com/urfave/cli/v2"
)

const (
	configFlag           = "config"
	topologyFlag         = "topology"
	outputFlag           = "output"
	baseFlag             = "base"
	prefixLengthFlag     = "prefix-length"
	watchFlag            = "watch"
	logLevelFlag         = "log-level"
	depthFlag            = "depth"
	fanoutFlag           = "fanout"
	terminalsPerLeafFlag = "terminals-per-leaf"
)

// ShowVersion shows the wireplan version information.
func ShowVersion(_ *cli.Context) {
	fmt.Printf("\tversion: %s\n", wireplan.Version)                            //nolint:forbidigo
	fmt.Printf("\tsource : %s\n", "https://github.com/carlmontanari/wireplan") //nolint:forbidigo
}

// Entrypoint returns the wireplan cli app.
func Entrypoint() *cli.App {
	cli.VersionPrinter = ShowVersion

	return &cli.App{
		Name:    "wireplan",
		Version: wireplan.Version,
		Usage:   "compile network topologies into wiring and addressing plans",
		Commands: []*cli.Command{
			compileCommand(),
			generateCommand(),
		},
	}
}

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:  "compile",
		Usage: "resolve switch ports, terminal attachments and addresses for a topology",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configFlag,
				Usage: "wireplan configuration file to load",
				Value: wireplan.ConfigFile,
			},
			&cli.StringFlag{
				Name:  topologyFlag,
				Usage: "topology file to compile (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:  outputFlag,
				Usage: "file to write the plan to (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:  baseFlag,
				Usage: "network of the first address block",
			},
			&cli.IntFlag{
				Name:  prefixLengthFlag,
				Usage: "prefix length of each per-switch address block",
			},
			&cli.BoolFlag{
				Name:  watchFlag,
				Usage: "recompile the plan whenever the topology file changes",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "log level, one of error, warn, info, debug",
			},
		},
		Action: func(ctx *cli.Context) error {
			m, err := wireplan.NewManager(compileOptions(ctx)...)
			if err != nil {
				return err
			}

			return m.Run()
		},
	}
}

// compileOptions turns explicitly set flags into manager options so unset flags leave config
// file values alone.
func compileOptions(ctx *cli.Context) []wireplan.Option {
	var opts []wireplan.Option

	if ctx.IsSet(configFlag) {
		opts = append(opts, wireplan.WithConfigFile(ctx.String(configFlag)))
	}

	if ctx.IsSet(topologyFlag) {
		opts = append(opts, wireplan.WithTopologyFile(ctx.String(topologyFlag)))
	}

	if ctx.IsSet(outputFlag) {
		opts = append(opts, wireplan.WithOutputFile(ctx.String(outputFlag)))
	}

	if ctx.IsSet(baseFlag) {
		opts = append(opts, wireplan.WithBaseNetwork(ctx.String(baseFlag)))
	}

	if ctx.IsSet(prefixLengthFlag) {
		opts = append(opts, wireplan.WithPrefixLength(ctx.Int(prefixLengthFlag)))
	}

	if ctx.IsSet(watchFlag) {
		opts = append(opts, wireplan.WithLiveReload(ctx.Bool(watchFlag)))
	}

	if ctx.IsSet(logLevelFlag) {
		opts = append(opts, wireplan.WithLogLevel(ctx.String(logLevelFlag)))
	}

	return opts
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write a tree topology file",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  depthFlag,
				Usage: "number of switch levels",
				Value: 2, //nolint:gomnd
			},
			&cli.IntFlag{
				Name:  fanoutFlag,
				Usage: "child switches per non-leaf switch",
				Value: 2, //nolint:gomnd
			},
			&cli.IntFlag{
				Name:  terminalsPerLeafFlag,
				Usage: "terminals attached to each leaf switch",
				Value: 2, //nolint:gomnd
			},
			&cli.StringFlag{
				Name:  outputFlag,
				Usage: "file to write the topology to (.yaml, .yml or .json)",
				Value: wireplan.TopologyFile,
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "log level, one of error, warn, info, debug",
				Value: wireplan.LogLevel,
			},
		},
		Action: func(ctx *cli.Context) error {
			logger := logging.New(ctx.String(logLevelFlag))

			topology, err := wireplan.GenerateTree(wireplan.TreeOptions{
				Depth:            ctx.Int(depthFlag),
				Fanout:           ctx.Int(fanoutFlag),
				TerminalsPerLeaf: ctx.Int(terminalsPerLeafFlag),
			})
			if err != nil {
				logger.Error("failed generating tree topology", "err", err)

				return err
			}

			err = topology.WriteToFile(ctx.String(outputFlag))
			if err != nil {
				logger.Error("failed writing tree topology", "err", err)

				return err
			}

			logger.Info(
				"tree topology written",
				"output", ctx.String(outputFlag),
				"switches", topology.Switches,
				"terminals", topology.Terminals,
			)

			return nil
		},
	}
}
