// Package config loads runtime settings from an optional pong.yaml in the
// working directory, with PONG_* environment variables taking precedence.
package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Backend names for the local frontend.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds all runtime settings. Field parameters are fixed constants
// of the simulation and deliberately not configurable here.
type Config struct {
	TargetFPS  int
	Seed       int64  // 0 means time-seeded
	HumanRight bool   // keyboard drives the right paddle
	Backend    string // ansi or tcell
	LogFile    string // empty discards logs

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Load reads pong.yaml if present and applies environment overrides.
// A missing config file is not an error; defaults cover everything.
func Load() Config {
	v := viper.New()
	v.SetConfigName("pong")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("pong")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("fps", 120)
	v.SetDefault("seed", 0)
	v.SetDefault("human", false)
	v.SetDefault("backend", BackendANSI)
	v.SetDefault("logfile", "")
	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.hostkey", ".ssh/pong_host_key")

	_ = v.ReadInConfig()

	return Config{
		TargetFPS:  cast.ToInt(v.Get("fps")),
		Seed:       cast.ToInt64(v.Get("seed")),
		HumanRight: cast.ToBool(v.Get("human")),
		Backend:    cast.ToString(v.Get("backend")),
		LogFile:    cast.ToString(v.Get("logfile")),
		SSHHost:    cast.ToString(v.Get("ssh.host")),
		SSHPort:    cast.ToString(v.Get("ssh.port")),
		SSHHostKey: cast.ToString(v.Get("ssh.hostkey")),
	}
}
