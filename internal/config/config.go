package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces keys in the Nakama runtime environment, e.g.
// "mahjong.card_year".
const EnvPrefix = "mahjong."

type LogConf struct {
	Level string `mapstructure:"level"`
}

type HTTPConf struct {
	Addr string `mapstructure:"addr"`
}

type MetricsConf struct {
	// Addr serves the statsviz page when set, e.g. ":6060".
	Addr string `mapstructure:"addr"`
}

type AuthConf struct {
	// Secret enables bearer-token checks on the HTTP gateway when set.
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

// Config is the engine configuration shared by the binaries.
type Config struct {
	CardYear     int         `mapstructure:"card_year"`
	Difficulty   string      `mapstructure:"difficulty"`
	UseBlanks    bool        `mapstructure:"use_blanks"`
	ProfilesFile string      `mapstructure:"profiles_file"`
	Log          LogConf     `mapstructure:"log"`
	HTTP         HTTPConf    `mapstructure:"http"`
	Metrics      MetricsConf `mapstructure:"metrics"`
	Auth         AuthConf    `mapstructure:"auth"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("card_year", 2025)
	v.SetDefault("difficulty", "medium")
	v.SetDefault("use_blanks", false)
	v.SetDefault("profiles_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "mahjong")
	v.SetDefault("auth.ttl_seconds", 3600)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &c, nil
}

// Default returns the configuration with no file or environment applied.
func Default() *Config {
	c, err := decode(newViper())
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a config file (yaml, json or toml by extension). An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return decode(v)
}

// FromEnv builds a config from the Nakama runtime environment. Only keys with
// the "mahjong." prefix are considered.
func FromEnv(env map[string]string) (*Config, error) {
	v := newViper()
	values := make(map[string]interface{})
	for k, val := range env {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		setNested(values, strings.Split(strings.TrimPrefix(k, EnvPrefix), "."), val)
	}
	if err := v.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("failed to merge env config: %w", err)
	}
	return decode(v)
}

func setNested(m map[string]interface{}, path []string, val string) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = val
}

// Watch loads path and calls fn with the fresh config whenever the file
// changes. Reload errors are passed to fn with a nil config.
func Watch(path string, fn func(*Config, error)) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := decode(v)
	if err != nil {
		return nil, err
	}
	v.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		fn(decode(v))
	})
	v.WatchConfig()
	return c, nil
}

var (
	mu       sync.RWMutex
	cfg      *Config
	loadOnce sync.Once
	loadErr  error
)

// Init loads the process-wide configuration once.
func Init(path string) error {
	loadOnce.Do(func() {
		c, err := Load(path)
		mu.Lock()
		cfg, loadErr = c, err
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Get returns the process-wide configuration, or the defaults before Init.
// Callers must not modify the returned value.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		return Default()
	}
	return c
}
