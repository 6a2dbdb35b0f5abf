package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"quiz/internal/client/terminal"
)

// EnvPrefix is prepended to every environment override, e.g. QUIZ_STORAGE_PATH
const EnvPrefix = "QUIZ"

type Config struct {
	Storage struct {
		// Path of the SQLite database. Empty keeps quizzes in memory only.
		Path string `mapstructure:"path"`
		Seed bool   `mapstructure:"seed"`
		WAL  bool   `mapstructure:"wal"`
		Lock bool   `mapstructure:"lock"`
	} `mapstructure:"storage"`

	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`

	Game struct {
		Seed uint64 `mapstructure:"seed"`
	} `mapstructure:"game"`

	Terminal terminal.Config `mapstructure:"terminal"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	var c Config
	c.Storage.Path = "quizzes.sqlite"
	c.Storage.Seed = true
	c.Storage.Lock = true
	c.Log.Level = "warn"
	c.Terminal.HistoryFile = ".quiz_history"
	c.Terminal.Color = "auto"
	return c
}

// Load config from file into the config struct, config must be a pointer to
// the config struct. Values already in config are the defaults. An empty
// file skips reading and applies environment overrides only. A set but empty
// variable still overrides, so QUIZ_STORAGE_PATH= selects the memory store.
func Load(file string, config any) error {
	v := viper.New()
	m := make(map[string]any)

	if err := mapstructure.Decode(config, &m); err != nil {
		return fmt.Errorf("mapstructure: %v", err)
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("merge config map: %v", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config from file %s: %v", file, err)
		}
	}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshal config: %v", err)
	}

	return nil
}
