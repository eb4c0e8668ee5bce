package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	StateDirName = ".sukhan"

	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	DataPath string `mapstructure:"-"`
	StateDir string `mapstructure:"-"`
	DBPath   string `mapstructure:"-"`

	Content ContentConfig `mapstructure:"content"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Random  RandomConfig  `mapstructure:"random"`
}

type ContentConfig struct {
	Dir string `mapstructure:"dir"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type QuizConfig struct {
	PassRatio float64 `mapstructure:"pass_ratio"`
}

// RandomConfig seeds the selector. An unset seed draws from the wall clock;
// any explicit value, zero included, gives a reproducible run.
type RandomConfig struct {
	Seed *uint64 `mapstructure:"seed"`
}

// Load reads sukhan.yaml from the data directory (or its state dir) and
// SUKHAN_* environment overrides on top of the defaults.
func Load(dataPath string) (Config, error) {
	if strings.TrimSpace(dataPath) == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("sukhan")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataPath)
	v.AddConfigPath(filepath.Join(dataPath, StateDirName))
	v.SetEnvPrefix("sukhan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("random.seed"); err != nil {
		return Config{}, fmt.Errorf("bind random.seed: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DataPath = dataPath
	cfg.StateDir = filepath.Join(dataPath, StateDirName)
	cfg.DBPath = filepath.Join(cfg.StateDir, "sukhan.db")
	if !filepath.IsAbs(cfg.Content.Dir) {
		cfg.Content.Dir = filepath.Join(dataPath, cfg.Content.Dir)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.dir", "content")
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("quiz.pass_ratio", 0.8)
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Quiz.PassRatio <= 0 || c.Quiz.PassRatio > 1 {
		return fmt.Errorf("quiz.pass_ratio must be within (0, 1], got %v", c.Quiz.PassRatio)
	}
	return nil
}
