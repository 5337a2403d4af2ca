package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/Tsn168/Operating-System-CPU-scheduling/internal/requests"
)

const (
	defaultPort                  = 9095
	defaultRoundRobinTimeQuantum = 2
	defaultLogLevel              = "info"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxTime               int
	LogLevel              string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and shares the result.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = LoadSchedulerConfig(""); err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads the config file at path, or config.yaml from the
// working directory when path is empty. A missing default file is not an
// error; every key has a default and can be overridden with SCHEDULER_*
// environment variables.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("scheduler.round_robin.time_quantum", defaultRoundRobinTimeQuantum)
	v.SetDefault("scheduler.max_time", requests.DefaultMaxTime)
	v.SetDefault("log.level", defaultLogLevel)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxTime:               v.GetInt("scheduler.max_time"),
		LogLevel:              v.GetString("log.level"),
	}, nil
}
