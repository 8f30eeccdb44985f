// Package config loads the settings of the mcwire command.
//
// Settings come from defaults, then an optional TOML file, then MCWIRE_*
// variables from an optional .env file, then MCWIRE_* variables from the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gstoney/mcwire/packet"
)

const (
	// DefaultFileName is looked up in the working directory when no path is
	// given.
	DefaultFileName = "mcwire.toml"

	// DefaultEnvFile is the .env file read when no path is given.
	DefaultEnvFile = ".env"

	DefaultVersion     = 753
	DefaultMaxFrameLen = 2 << 20

	envPrefix = "MCWIRE_"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Version is the protocol version used to decode.
	Version int32 `toml:"version"`

	// Direction and State are the defaults for single packet decoding.
	Direction string `toml:"direction"`
	State     string `toml:"state"`

	// Format is the output format: text or json.
	Format string `toml:"format"`

	// MaxFrameLen bounds one capture record.
	MaxFrameLen int32 `toml:"max_frame_len"`

	Log Logging `toml:"log"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Version:     DefaultVersion,
		Direction:   "clientbound",
		State:       "handshaking",
		Format:      "text",
		MaxFrameLen: DefaultMaxFrameLen,
		Log: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config. A missing file at path or envFile is not an error.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
			}
		}
	}

	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}

	if err := cfg.apply(env); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(env map[string]string) error {
	for k, v := range env {
		var err error
		switch k {
		case envPrefix + "VERSION":
			err = parseInt32(v, &c.Version)
		case envPrefix + "DIRECTION":
			c.Direction = v
		case envPrefix + "STATE":
			c.State = v
		case envPrefix + "FORMAT":
			c.Format = v
		case envPrefix + "MAX_FRAME_LEN":
			err = parseInt32(v, &c.MaxFrameLen)
		case envPrefix + "LOG_LEVEL":
			c.Log.Level = v
		case envPrefix + "LOG_FORMAT":
			c.Log.Format = v
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, k, err)
		}
	}
	return nil
}

func parseInt32(s string, dst *int32) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return err
	}
	*dst = int32(n)
	return nil
}

func (c Config) Validate() error {
	if _, err := c.PacketDirection(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.PacketState(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if c.MaxFrameLen <= 0 {
		return fmt.Errorf("%w: max_frame_len %d", ErrInvalid, c.MaxFrameLen)
	}
	return c.Log.Validate()
}

func (c Config) PacketDirection() (packet.Direction, error) {
	return packet.ParseDirection(c.Direction)
}

func (c Config) PacketState() (packet.State, error) {
	return packet.ParseState(c.State)
}

func (l Logging) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}

func (l Logging) Validate() error {
	if _, err := l.level(); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	if l.Format != "text" && l.Format != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalid, l.Format)
	}
	return nil
}

// NewLogger builds a logger writing to w. An invalid level falls back to
// info.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
