package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	InstanceName    string        `mapstructure:"instance_name"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// BackendURL is the base URL of the service that stores referrals.
	BackendURL     string        `mapstructure:"backend_url"`
	BackendTimeout time.Duration `mapstructure:"backend_timeout"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SessionCookie string        `mapstructure:"session_cookie"`

	// DatabaseURL enables the submission journal when set.
	DatabaseURL string `mapstructure:"database_url"`

	FallbackAfter time.Duration `mapstructure:"fallback_after"`
	StaticDir     string        `mapstructure:"static_dir"`
}

var defaults = map[string]any{
	"port":             "8080",
	"read_timeout":     15 * time.Second,
	"write_timeout":    15 * time.Second,
	"idle_timeout":     60 * time.Second,
	"shutdown_timeout": 10 * time.Second,
	"instance_name":    "referearn-1",
	"log_level":        "info",
	"log_format":       "json",
	"backend_url":      "",
	"backend_timeout":  time.Duration(0),
	"redis_addr":       "",
	"redis_password":   "",
	"redis_db":         0,
	"session_ttl":      24 * time.Hour,
	"session_cookie":   "referearn_visitor",
	"database_url":     "",
	"fallback_after":   250 * time.Millisecond,
	"static_dir":       "./web/static",
}

// Load reads an optional .env file and then the environment. Keys are the
// upper-case form of the mapstructure tags, e.g. BACKEND_URL.
func Load(envFiles ...string) (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
