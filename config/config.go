package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	SourceFile  = "file"
	SourceMysql = "mysql"
)

var (
	LogPath     = ""
	ResolverLog = "resolver"
	ServerLog   = "server"
	AnchorLog   = "anchor"
)

type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogPath       string `mapstructure:"log_path"`
	Source        string `mapstructure:"source"`
	WorkspaceFile string `mapstructure:"workspace_file"`
	WorkspaceId   uint64 `mapstructure:"workspace_id"`
	DBUrl         string `mapstructure:"db_url"`
	DBScheme      string `mapstructure:"db_scheme"`
	DBUser        string `mapstructure:"db_user"`
	DBPasswd      string `mapstructure:"db_passwd"`
	Listen        string `mapstructure:"listen"`
}

var defaults = map[string]interface{}{
	"log_level":      "info",
	"log_path":       LogPath,
	"source":         SourceFile,
	"workspace_file": "./workspace.json",
	"workspace_id":   1,
	"listen":         "0.0.0.0:8089",
}

var envs = map[string]string{
	"log_level":      "ANCHOR_LOG_LEVEL",
	"log_path":       "ANCHOR_LOG_PATH",
	"source":         "ANCHOR_SOURCE",
	"workspace_file": "ANCHOR_WORKSPACE_FILE",
	"workspace_id":   "ANCHOR_WORKSPACE_ID",
	"db_url":         "ANCHOR_DB_URL",
	"db_scheme":      "ANCHOR_DB_SCHEME",
	"db_user":        "ANCHOR_DB_USER",
	"db_passwd":      "ANCHOR_DB_PASSWD",
	"listen":         "ANCHOR_LISTEN",
}

// Load reads the config file at path, if any, then applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envs {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", env)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Source != SourceFile && cfg.Source != SourceMysql {
		return nil, errors.Errorf("unknown workspace source %q", cfg.Source)
	}
	return cfg, nil
}
