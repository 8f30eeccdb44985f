// Package cmd implements the mcwire command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/internal/config"
	"github.com/gstoney/mcwire/packet"
)

// app is the state shared by every subcommand once flags and config are
// resolved.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	proto *packet.Protocol
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	var (
		configPath string
		envFile    string
		version    int32
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "mcwire",
		Short: "Inspect Minecraft protocol packets offline",
		Long: `mcwire decodes Minecraft Java Edition packets, NBT files and packet
captures without connecting to a server.

Settings are read from mcwire.toml, then MCWIRE_* variables in .env,
then MCWIRE_* variables in the environment, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("protocol") {
				cfg.Version = version
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
				if err := cfg.Log.Validate(); err != nil {
					return err
				}
			}

			a.cfg = cfg
			a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())
			if a.proto, err = mcwire.Lookup(cfg.Version); err != nil {
				return err
			}
			a.log.Debug("protocol selected", "name", a.proto.Name(), "version", a.proto.Version())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "file with MCWIRE_* variables")
	root.PersistentFlags().Int32VarP(&version, "protocol", "p", config.DefaultVersion, "protocol version")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(
		describeCmd(a),
		decodeCmd(a),
		nbtCmd(a),
		framesCmd(a),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// stateFlag resolves a state flag, falling back to the configured default.
func (a *app) stateFlag(cmd *cobra.Command, name string) (packet.State, error) {
	if !cmd.Flags().Changed(name) {
		return a.cfg.PacketState()
	}
	v, _ := cmd.Flags().GetString(name)
	s, err := packet.ParseState(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return s, nil
}

func (a *app) directionFlag(cmd *cobra.Command, name string) (packet.Direction, error) {
	if !cmd.Flags().Changed(name) {
		return a.cfg.PacketDirection()
	}
	v, _ := cmd.Flags().GetString(name)
	d, err := packet.ParseDirection(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}
