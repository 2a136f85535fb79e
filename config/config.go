package config

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"massnet.org/mass-sha256/logging"
)

const (
	DefaultConfigName   = ".sha256sum"
	DefaultLogDir       = ""
	DefaultLogFilename  = "sha256sum"
	DefaultLogLevel     = "info"
	DefaultCacheEntries = 1024
	MaxWorkers          = 1024
	EnvPrefix           = "SHA256SUM"
)

// Keys understood in config files, environment and flags.
const (
	KeyLogDir        = "log_dir"
	KeyLogLevel      = "log_level"
	KeyLogMaxAge     = "log_max_age"
	KeyDisableCPrint = "disable_cprint"
	KeyWorkers       = "workers"
	KeyCacheEntries  = "cache_entries"
)

type Config struct {
	Log   *Log   `json:"log"`
	Batch *Batch `json:"batch"`
	// File is the config file that was read, empty if none.
	File string `json:"-"`
}

type Log struct {
	LogDir        string `json:"log_dir"`
	LogLevel      string `json:"log_level"`
	MaxAge        uint32 `json:"log_max_age"`
	DisableCPrint bool   `json:"disable_cprint"`
}

type Batch struct {
	Workers      int `json:"workers"`
	CacheEntries int `json:"cache_entries"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:   DefaultLog(),
		Batch: DefaultBatch(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:        DefaultLogDir,
		LogLevel:      DefaultLogLevel,
		MaxAge:        0,
		DisableCPrint: false,
	}
}

func DefaultBatch() *Batch {
	return &Batch{
		Workers:      runtime.NumCPU(),
		CacheEntries: DefaultCacheEntries,
	}
}

// NewViper returns a viper instance carrying the defaults and the
// SHA256SUM_ environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyLogDir, d.Log.LogDir)
	v.SetDefault(KeyLogLevel, d.Log.LogLevel)
	v.SetDefault(KeyLogMaxAge, d.Log.MaxAge)
	v.SetDefault(KeyDisableCPrint, d.Log.DisableCPrint)
	v.SetDefault(KeyWorkers, d.Batch.Workers)
	v.SetDefault(KeyCacheEntries, d.Batch.CacheEntries)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadConfig reads cfgFile, or ./.sha256sum.{json,yaml,...} when cfgFile
// is empty, into v and returns the resulting Config. A missing default
// file is not an error; a missing explicit file is.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath("./")
		v.SetConfigName(DefaultConfigName)
	}

	cfg := &Config{}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); cfgFile != "" || !notFound {
			return nil, errors.Wrap(err, "fail on reading config")
		}
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	cfg.Log = &Log{
		LogDir:        v.GetString(KeyLogDir),
		LogLevel:      v.GetString(KeyLogLevel),
		MaxAge:        uint32(v.GetInt(KeyLogMaxAge)),
		DisableCPrint: v.GetBool(KeyDisableCPrint),
	}
	cfg.Batch = &Batch{
		Workers:      v.GetInt(KeyWorkers),
		CacheEntries: v.GetInt(KeyCacheEntries),
	}
	return cfg, CheckConfig(cfg)
}

func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}
	if cfg.Batch == nil {
		cfg.Batch = DefaultBatch()
	}

	if !logging.ValidLevel(cfg.Log.LogLevel) {
		return errors.Errorf("invalid log level %q", cfg.Log.LogLevel)
	}
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = runtime.NumCPU()
	}
	if cfg.Batch.Workers > MaxWorkers {
		return errors.Errorf("workers cannot be more than %d, current %d", MaxWorkers, cfg.Batch.Workers)
	}
	if cfg.Batch.CacheEntries < 0 {
		return errors.Errorf("invalid cache entries %d", cfg.Batch.CacheEntries)
	}
	return nil
}

// LoggingOptions converts the log section for logging.Init.
func (cfg *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Dir:           cfg.Log.LogDir,
		Filename:      DefaultLogFilename,
		Level:         cfg.Log.LogLevel,
		MaxAge:        cfg.Log.MaxAge,
		DisableCPrint: cfg.Log.DisableCPrint,
	}
}
